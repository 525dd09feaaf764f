package entities

type Plant struct {
	PlantID       uint   `gorm:"primaryKey" json:"plantid"`
	PlantName     string `gorm:"index" json:"plantname"`
	PlantAddress  string `json:"plantaddress"`
	ContactPerson string `json:"contactperson"`
	MobileNo      string `json:"mobileno"`
	Remarks       string `json:"remarks"`
	IsDeleted     bool   `gorm:"index" json:"isdeleted"`
}
