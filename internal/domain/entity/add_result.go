package entity

// AddResult is what the storage network reports for added content.
type AddResult struct {
	Cid  string `json:"cid"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}
