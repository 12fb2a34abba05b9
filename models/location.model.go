package models

// State is a top-level region in the location catalog
type State struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// District belongs to a state
type District struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StateID uint   `json:"state_id" gorm:"index;not null"`
	Name    string `json:"name" gorm:"not null"`
}

// Institution belongs to a district; clubs are hosted by institutions
type Institution struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	DistrictID uint   `json:"district_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"not null"`
	Status     string `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED
}
