package dto

// VerifyGSTINRequest carries the identifier to validate. Length is not a
// binding constraint on purpose: a wrong-length identifier is a valid
// request whose answer is false.
type VerifyGSTINRequest struct {
	GSTIN string `json:"gstin" binding:"required"`
}

// VerifyGSTINResponse reports the single-boolean verification result.
type VerifyGSTINResponse struct {
	GSTIN string `json:"gstin"`
	Valid bool   `json:"valid"`
}
