// Package model holds the GORM persistence models mirroring the database tables.
package model

// All lists every model for schema migration. ProfileModel comes first so
// the habit tables can declare their foreign keys against it.
func All() []any {
	return []any{
		&ProfileModel{},
		&WaterIntakeModel{},
		&SunlightSessionModel{},
		&MeditationSessionModel{},
		&SleepRecordModel{},
		&PhysicalActivityModel{},
		&TaskItemModel{},
	}
}
