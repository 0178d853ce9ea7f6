package user

// User represents a registered student.
// Text fields and Percentage are optional; nil means the client never sent them.
type User struct {
	ID           int64    // ID is assigned by the store on registration
	Name         *string  // Name is the student's full name
	Email        *string  // Email is the contact address, not validated
	Course       *string  // Course the student enrolled in
	StudentClass *string  // StudentClass is the class or year label
	Percentage   *float64 // Percentage is the latest reported score
	Branch       *string  // Branch is the department or stream
	MobileNumber *string  // MobileNumber is free-form, not validated
}

// Clone returns a deep copy of the user so callers cannot reach shared field storage.
func (u User) Clone() User {
	return User{
		ID:           u.ID,
		Name:         cloneString(u.Name),
		Email:        cloneString(u.Email),
		Course:       cloneString(u.Course),
		StudentClass: cloneString(u.StudentClass),
		Percentage:   cloneFloat(u.Percentage),
		Branch:       cloneString(u.Branch),
		MobileNumber: cloneString(u.MobileNumber),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
