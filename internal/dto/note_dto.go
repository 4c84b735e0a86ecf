package dto

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateNoteResponse struct {
	Id      int64  `json:"id"`
	Content string `json:"content"`
}

// NoteResponse is one element of the GET /notes listing. CreatedAt is an
// ISO-8601 (RFC 3339) string shaped at the service layer.
type NoteResponse struct {
	Id        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
