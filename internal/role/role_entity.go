package role

type Role struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(50);not null;uniqueIndex:roles_name_key"`
	Description *string `gorm:"type:text"`
}

func (Role) TableName() string {
	return "roles"
}
