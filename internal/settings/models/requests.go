package models

import usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"

// Request bodies for the settings endpoints. Field names mirror what the
// client sends; validation lives in the service.

type UpdateEmailRequest struct {
	Email string `json:"email"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

type UpdateAboutRequest struct {
	About    string `json:"about"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Picture  string `json:"picture"`
}

type UpdateProfileUIRequest struct {
	ProfileUI usermodels.ProfileUI `json:"profileUI"`
}

type UpdatePortfolioRequest struct {
	Portfolio []usermodels.PortfolioItem `json:"portfolio"`
}

type UpdateSocialsRequest struct {
	GitHub   string `json:"githubProfile"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

type UpdateSoundRequest struct {
	Sound bool `json:"sound"`
}

type UpdateKeyboardShortcutsRequest struct {
	KeyboardShortcuts bool `json:"keyboardShortcuts"`
}

type UpdateHonestyRequest struct {
	IsHonest bool `json:"isHonest"`
}

type UpdateQuincyEmailRequest struct {
	SendQuincyEmail bool `json:"sendQuincyEmail"`
}
