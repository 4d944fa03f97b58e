package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`
}

// HealthDTO is the /health response.
type HealthDTO struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store,omitempty" example:"down"`
	Error  string `json:"error,omitempty"`
}
