package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Profession  string `json:"profession" binding:"required,max=60"`
}

type UpdateUserRequest struct {
	DisplayName   *string `json:"display_name,omitempty"`
	Role          *string `json:"role,omitempty"`
	Profession    *string `json:"profession,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
	PlanID        *string `json:"plan_id,omitempty"`
	Blocked       *bool   `json:"blocked,omitempty"`
}
