// AngelaMos | 2026
// dto.go

package banner

type CreateRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	Subtitle    string  `json:"subtitle"    validate:"max=200"`
	Description string  `json:"description" validate:"max=1000"`
	BgColor     *string `json:"bg_color"    validate:"omitempty,max=32"`
	Image       string  `json:"image"       validate:"max=2048"`
	ButtonText  *string `json:"button_text" validate:"omitempty,max=50"`
	ButtonLink  *string `json:"button_link" validate:"omitempty,max=2048"`
	Order       int     `json:"order"`
}

type UpdateRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=200"`
	Subtitle    *string `json:"subtitle,omitempty"    validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	BgColor     *string `json:"bg_color,omitempty"    validate:"omitempty,max=32"`
	Image       *string `json:"image,omitempty"       validate:"omitempty,max=2048"`
	ButtonText  *string `json:"button_text,omitempty" validate:"omitempty,max=50"`
	ButtonLink  *string `json:"button_link,omitempty" validate:"omitempty,max=2048"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Order       *int    `json:"order,omitempty"`
}
