package domain

// Canonical department enumeration. The annotator classifies every complaint
// into one of these; officials are appointed against them.
var Departments = []string{
	"Public Works Department (PWD)",
	"Jal Sansthan (Water)",
	"Electricity (UPCL)",
	"Health & Family Welfare",
	"Panchayati Raj",
}

const (
	// UnassignedDepartment buckets officials whose department is not in
	// the canonical enumeration.
	UnassignedDepartment = "Unassigned"

	// GeneralSubDepartment buckets complaints without a sub-department.
	GeneralSubDepartment = "General"
)

// IsCanonicalDepartment reports whether name is in the fixed enumeration.
func IsCanonicalDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}
