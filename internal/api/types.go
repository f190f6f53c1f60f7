package api

import "articlesum/internal/domain"

type SummarizeRequest struct {
	URL       string `json:"url,omitempty"`
	Text      string `json:"text,omitempty"`
	Method    string `json:"method,omitempty"`
	Sentences *int   `json:"sentences,omitempty"`
}

type SummarizeResponse struct {
	ID             int64  `json:"id,omitempty"`
	Summary        string `json:"summary"`
	WordCount      int    `json:"word_count"`
	Source         string `json:"source"`
	Method         string `json:"method"`
	OriginalLength int    `json:"original_length"`
	Title          string `json:"title,omitempty"`
}

type HistoryResponse struct {
	History []domain.SummaryRecord `json:"history"`
	Count   int                    `json:"count"`
}

type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
