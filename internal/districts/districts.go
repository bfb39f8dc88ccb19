// Package districts holds the fixed set of Telangana districts a submission
// may be filed under. The set is the contract between the selection UI and
// server-side validation: client-submitted values are always re-checked here.
package districts

import "sort"

var all = []string{
	"Adilabad", "Bhadradri Kothagudem", "Hanamkonda", "Hyderabad",
	"Jagtial", "Jangaon", "Jayashankar Bhupalpally", "Jogulamba Gadwal",
	"Kamareddy", "Karimnagar", "Khammam", "Kumuram Bheem Asifabad",
	"Mahabubabad", "Mahabubnagar", "Mancherial", "Medak", "Medchal-Malkajgiri",
	"Mulugu", "Nagarkurnool", "Nalgonda", "Narayanpet", "Nirmal",
	"Nizamabad", "Peddapalli", "Rajanna Sircilla", "Rangareddy",
	"Sangareddy", "Siddipet", "Suryapet", "Vikarabad", "Wanaparthy",
	"Warangal", "Yadadri Bhuvanagiri",
}

var members = func() map[string]struct{} {
	m := make(map[string]struct{}, len(all))
	for _, d := range all {
		m[d] = struct{}{}
	}
	return m
}()

// Valid reports whether name is a member of the district set.
func Valid(name string) bool {
	_, ok := members[name]
	return ok
}

// Sorted returns the display list, alphabetically ordered.
func Sorted() []string {
	out := make([]string, len(all))
	copy(out, all)
	sort.Strings(out)
	return out
}
