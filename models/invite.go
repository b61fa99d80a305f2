// Package models — Invite domain modeli.
//
// Kayıt sonrası yönlendirilen davet sayfası: subscriber'ın paylaşacağı link
// ve linkin performansı (tıklama, getirdiği kayıt, ranking sırası).
package models

// InviteStats, bir subscriber'ın davet istatistikleri.
// Position nil = henüz ranking'de değil (hiç kayıt getirmemiş).
type InviteStats struct {
	SubscriberID  string `json:"subscriber_id"`
	InviteURL     string `json:"invite_url"`
	Clicks        int    `json:"clicks"`
	Subscriptions int    `json:"subscriptions"`
	Position      *int   `json:"position"`
}
