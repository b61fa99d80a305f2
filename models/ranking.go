// Package models — Ranking domain modeli.
package models

// Medal, ranking'in ilk üç sırasına verilen madalya.
type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalCopper Medal = "copper"
)

// MedalFor, 1 tabanlı sıraya göre madalya döner. 4. ve sonrası madalyasız.
func MedalFor(position int) Medal {
	switch position {
	case 1:
		return MedalGold
	case 2:
		return MedalSilver
	case 3:
		return MedalCopper
	default:
		return MedalNone
	}
}

// RankingEntry, ranking listesinin tek satırı.
//
// Sıralama upstream'de hesaplanır; Position sadece listedeki yerdir (index+1),
// lokal olarak yeniden sıralama yapılmaz.
type RankingEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Position int    `json:"position"`
	Medal    Medal  `json:"medal,omitempty"`
}

// Ranking, GET /api/ranking yanıtı.
type Ranking struct {
	Ranking []RankingEntry `json:"ranking"`
}
