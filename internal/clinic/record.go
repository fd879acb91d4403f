package clinic

// MedicalRecord is the directory of registered patients, unique by
// profile. Lookups are linear; the directory stays small.
type MedicalRecord struct {
	patients []*Patient
}

// NewMedicalRecord creates an empty patient directory.
func NewMedicalRecord() *MedicalRecord {
	return &MedicalRecord{}
}

// Find returns the registered patient with the given profile, or nil.
func (r *MedicalRecord) Find(profile Profile) *Patient {
	for _, p := range r.patients {
		if p.Profile.Equal(profile) {
			return p
		}
	}
	return nil
}

// FindOrCreate returns the registered patient for the profile,
// registering a new one if none exists yet.
func (r *MedicalRecord) FindOrCreate(profile Profile) *Patient {
	if p := r.Find(profile); p != nil {
		return p
	}
	p := NewPatient(profile)
	r.patients = append(r.patients, p)
	return p
}

// Size returns the number of registered patients.
func (r *MedicalRecord) Size() int {
	return len(r.patients)
}
