package academy

import "testing"

func validAcademy() Academy {
	return Academy{
		ID:           "a-001",
		CommunityID:  "c-001",
		Name:         "Downtown Dojo",
		Address:      "1 Main St",
		ContactEmail: "dojo@example.com",
		Status:       StatusActive,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Academy)
		wantErr error
	}{
		{"valid", func(a *Academy) {}, nil},
		{"no contact email is fine", func(a *Academy) { a.ContactEmail = "" }, nil},
		{"empty name", func(a *Academy) { a.Name = "  " }, ErrEmptyName},
		{"no community", func(a *Academy) { a.CommunityID = "" }, ErrEmptyCommunity},
		{"bad email", func(a *Academy) { a.ContactEmail = "dojo.example.com" }, ErrInvalidEmail},
		{"bad status", func(a *Academy) { a.Status = "paused" }, ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAcademy()
			tt.mutate(&a)
			if err := a.Validate(); err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
