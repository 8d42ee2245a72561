// Package refdata supplies the read-only lookup tables the consoles consume:
// the address enumeration chain, fixed categorical enumerations, and the
// doctor directory. The tables are compiled in and never mutated at runtime;
// they sit outside the console core's responsibility.
package refdata

import "sort"

// Address enumerations, keyed country -> state -> district -> mandal.
// Districts without a mandal entry take free-text mandal input.
var addressTree = map[string]map[string]map[string][]string{
	"India": {
		"Telangana": {
			"Hyderabad":    {"Ameerpet", "Charminar", "Khairatabad", "Secunderabad"},
			"Rangareddy":   {"Chevella", "Ibrahimpatnam", "Maheshwaram", "Shamshabad"},
			"Warangal":     {"Hanamkonda", "Kazipet", "Parkal"},
			"Karimnagar":   nil, // free text
		},
		"Andhra Pradesh": {
			"Visakhapatnam": {"Anandapuram", "Bheemunipatnam", "Pendurthi"},
			"Guntur":        {"Mangalagiri", "Tadepalli", "Tenali"},
			"Krishna":       nil,
		},
		"Karnataka": {
			"Bengaluru Urban": {"Anekal", "Yelahanka"},
			"Mysuru":          nil,
		},
	},
}

// Countries lists the supported countries.
func Countries() []string {
	return []string{"India"}
}

// States lists the states enumerated for a country, empty when unknown.
func States(country string) []string {
	states := addressTree[country]
	out := make([]string, 0, len(states))
	for _, s := range []string{"Telangana", "Andhra Pradesh", "Karnataka"} {
		if _, ok := states[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Districts lists the districts of a state, empty when unknown.
func Districts(country, state string) []string {
	districts := addressTree[country][state]
	out := make([]string, 0, len(districts))
	for d := range districts {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Mandals lists the mandal enumeration for a district. A nil result means the
// district takes free-text mandal input.
func Mandals(country, state, district string) []string {
	mandals, ok := addressTree[country][state][district]
	if !ok || mandals == nil {
		return nil
	}
	return append([]string(nil), mandals...)
}

// BloodGroups lists the blood group enumeration.
func BloodGroups() []string {
	return []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
}

// AppointmentTypes lists the visit types a booking offers.
func AppointmentTypes() []string {
	return []string{"Consultation", "Follow-up", "Check-up", "Emergency"}
}

// TimeSlots lists the bookable slots of a working day.
func TimeSlots() []string {
	return []string{
		"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
		"12:00 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM",
		"04:30 PM", "05:00 PM",
	}
}

// BedTypes lists the bed type enumeration.
func BedTypes() []string {
	return []string{"General", "Private", "ICU", "Emergency"}
}

// Wards lists the hospital wards.
func Wards() []string {
	return []string{"Ward A", "Ward B", "Ward C", "ICU Wing", "Emergency Wing"}
}

// Departments lists the clinical departments.
func Departments() []string {
	return []string{
		"General Medicine", "Cardiology", "Orthopedics", "Pediatrics",
		"Gynecology", "Dermatology", "Neurology", "Radiology", "ENT",
	}
}

// Doctor is one entry of the doctor directory.
type Doctor struct {
	Name           string `json:"name"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
}

var doctors = []Doctor{
	{Name: "Dr. Arjun Mehta", Department: "Cardiology", Specialization: "Interventional Cardiology"},
	{Name: "Dr. Kavita Rao", Department: "General Medicine", Specialization: "Internal Medicine"},
	{Name: "Dr. Suresh Reddy", Department: "Orthopedics", Specialization: "Joint Replacement"},
	{Name: "Dr. Anita Desai", Department: "Pediatrics", Specialization: "Neonatology"},
	{Name: "Dr. Vikram Singh", Department: "Neurology", Specialization: "Stroke Care"},
	{Name: "Dr. Lakshmi Nair", Department: "Gynecology", Specialization: "Obstetrics"},
	{Name: "Dr. Rohit Sharma", Department: "Radiology", Specialization: "Diagnostic Imaging"},
	{Name: "Dr. Farah Khan", Department: "Dermatology", Specialization: "Clinical Dermatology"},
}

// Doctors lists the doctor directory.
func Doctors() []Doctor {
	return append([]Doctor(nil), doctors...)
}

// DoctorDepartment resolves a doctor's department, empty when the name is not
// in the directory. Consoles call this once at appointment creation; the
// department is never re-derived on edit.
func DoctorDepartment(name string) string {
	for _, d := range doctors {
		if d.Name == name {
			return d.Department
		}
	}
	return ""
}
