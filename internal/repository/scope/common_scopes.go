package scope

import "gorm.io/gorm"

// Joined user columns. Report rows never carry more of the user than this.
func clientColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "registration_number", "department", "residence_type")
}

func counsellorColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func appointmentColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "category")
}

// WithParties preloads the client and counsellor of an appointment or session.
func WithParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Client", clientColumns).Preload("Counsellor", counsellorColumns)
}

// WithParentAppointment preloads the appointment a session was recorded for.
func WithParentAppointment(db *gorm.DB) *gorm.DB {
	return db.Preload("Appointment", appointmentColumns)
}
