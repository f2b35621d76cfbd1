package dto

// SignupRequest represents a new user registration request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignupResponse tells the client to check their inbox
type SignupResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	ForceLogout bool   `json:"forceLogout"`
}

// LoginResponse represents a successful login. The session token travels in a
// cookie, not in the body.
type LoginResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// DriverLoginRequest represents driver login credentials
type DriverLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DriverLoginResponse represents a successful driver login
type DriverLoginResponse struct {
	Message string          `json:"message"`
	Driver  *DriverResponse `json:"driver"`
}

// AdminLoginRequest represents admin login credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse represents a successful admin login
type AdminLoginResponse struct {
	Message string         `json:"message"`
	Admin   *AdminResponse `json:"admin"`
}
