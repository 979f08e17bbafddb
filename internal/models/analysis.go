package models

import "time"

// Section holds the model's output for one framework heading.
type Section struct {
	Index    int    `json:"index" msgpack:"index"`
	Key      string `json:"key" msgpack:"key"`
	Label    string `json:"label" msgpack:"label"`
	Content  string `json:"content" msgpack:"content"`
	Missing  bool   `json:"missing,omitempty" msgpack:"missing,omitempty"`   // heading absent from the model reply
	Cautions int    `json:"cautions,omitempty" msgpack:"cautions,omitempty"` // ⚠ markers inside this section
	Inferred bool   `json:"inferred,omitempty" msgpack:"inferred,omitempty"` // contains an "(Inference)" flag
}

// Analysis is the structured summary produced for one uploaded paper.
// It is held in memory only, until evicted by TTL or store cap.
type Analysis struct {
	ID        string    `json:"id" msgpack:"id"`
	Title     string    `json:"title" msgpack:"title"`
	Authors   string    `json:"authors,omitempty" msgpack:"authors,omitempty"`
	Notes     string    `json:"notes,omitempty" msgpack:"notes,omitempty"`
	Model     string    `json:"model" msgpack:"model"`
	FileName  string    `json:"fileName" msgpack:"fileName"`
	FileSize  int64     `json:"fileSize" msgpack:"fileSize"`
	PageCount int       `json:"pageCount" msgpack:"pageCount"` // pages actually read for text
	Sections  []Section `json:"sections" msgpack:"sections"`
	Cautions  int       `json:"cautions" msgpack:"cautions"` // total ⚠ markers across all sections
	CreatedAt time.Time `json:"createdAt" msgpack:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" msgpack:"expiresAt"`
	ElapsedMs int64     `json:"elapsedMs" msgpack:"elapsedMs"` // wall time of the model call
}

// AnalysisSummary is the list-view projection of an Analysis.
type AnalysisSummary struct {
	ID        string    `json:"id" msgpack:"id"`
	Title     string    `json:"title" msgpack:"title"`
	FileName  string    `json:"fileName" msgpack:"fileName"`
	Model     string    `json:"model" msgpack:"model"`
	Cautions  int       `json:"cautions" msgpack:"cautions"`
	CreatedAt time.Time `json:"createdAt" msgpack:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" msgpack:"expiresAt"`
}

// Summary returns the list-view projection of the analysis.
func (a *Analysis) Summary() AnalysisSummary {
	return AnalysisSummary{
		ID:        a.ID,
		Title:     a.Title,
		FileName:  a.FileName,
		Model:     a.Model,
		Cautions:  a.Cautions,
		CreatedAt: a.CreatedAt,
		ExpiresAt: a.ExpiresAt,
	}
}
