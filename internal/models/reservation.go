package models

// Reservation é a única entidade do sistema. Imutável após a criação;
// só deixa de existir quando a coleção inteira é zerada pelo reset.
type Reservation struct {
	// Seq preserva a ordem de aceitação entre regravações da coleção.
	Seq uint `gorm:"primaryKey;autoIncrement" json:"-"`

	// ID derivado do timestamp de criação (Unix ms).
	ID int64 `gorm:"index" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Contact string `gorm:"size:100;not null" json:"contact"`

	Date string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:10;not null" json:"time"`       // HH:MM como enviado
	Slot string `gorm:"size:20;not null" json:"slot"`       // derivado de Time

	Guests        int    `json:"guests"`
	PaymentMethod string `gorm:"size:20" json:"paymentMethod"`
}
