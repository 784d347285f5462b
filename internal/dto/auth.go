package dto

// ── registration / login ──

// RegisterRequest registration modal payload
type RegisterRequest struct {
	FullName   string `json:"fullName"   form:"fullName"   validate:"required"`
	Email      string `json:"email"      form:"email"      validate:"required,email_shape"`
	StudentUSI string `json:"studentUSI" form:"studentUSI" validate:"required,usi"`
	Password   string `json:"password"   form:"password"   validate:"required,min=6"`
}

// LoginRequest login form payload
type LoginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email_shape"`
	Password string `json:"password" form:"password" validate:"required"`
}
