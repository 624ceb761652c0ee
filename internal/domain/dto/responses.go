package dto

type TxResponse struct {
	OK bool   `json:"ok"`
	Tx string `json:"tx"`
}

type UploadResponse struct {
	Cid  string `json:"cid"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UploadDescriptor is the journaled view of a past upload.
type UploadDescriptor struct {
	Cid      string `json:"cid"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Uploaded int64  `json:"uploaded"`
}
