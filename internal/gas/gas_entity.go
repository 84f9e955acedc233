package gas

import "time"

const DefaultUnit = "Cubic Meters"

type Gas struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:gases_name_key"`
	Unit        string    `gorm:"type:varchar(50);not null;default:'Cubic Meters'"`
	Description *string   `gorm:"type:text"`
	IsDeleted   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Gas) TableName() string {
	return "gases"
}
