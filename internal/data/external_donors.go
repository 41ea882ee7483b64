// Package data bundles the external donor directory merged into search
// results alongside locally registered donors. These records have no
// credentials and are never persisted; phone number is the dedup key.
package data

import "bloodlink_backend/internal/models"

// ExternalDonors returns a fresh copy of the bundled directory so callers
// can't mutate the canonical list.
func ExternalDonors() []models.Donor {
	out := make([]models.Donor, len(externalDonors))
	copy(out, externalDonors)
	return out
}

var externalDonors = []models.Donor{
	{ID: "ext_1", FullName: "Aarav Sharma", BloodGroup: "O+", State: "Maharashtra", District: "Mumbai City", City: "Colaba", Phone: "9876543210", Email: "aarav.s@example.com"},
	{ID: "ext_2", FullName: "Vihaan Verma", BloodGroup: "A+", State: "Delhi", District: "New Delhi", City: "Connaught Place", Phone: "9876543211", Email: "vihaan.v@example.com"},
	{ID: "ext_3", FullName: "Aditya Kumar", BloodGroup: "B+", State: "Karnataka", District: "Bangalore Urban", City: "Indiranagar", Phone: "9876543212", Email: "aditya.k@example.com"},
	{ID: "ext_4", FullName: "Sai Krishna", BloodGroup: "AB+", State: "Tamil Nadu", District: "Chennai", City: "T Nagar", Phone: "9876543213", Email: "sai.k@example.com"},
	{ID: "ext_5", FullName: "Ishaan Gupta", BloodGroup: "O-", State: "Uttar Pradesh", District: "Lucknow", City: "Hazratganj", Phone: "9876543214", Email: "ishaan.g@example.com"},
	{ID: "ext_6", FullName: "Reyansh Reddy", BloodGroup: "A-", State: "Telangana", District: "Hyderabad", City: "Jubilee Hills", Phone: "9876543215", Email: "reyansh.r@example.com"},
	{ID: "ext_7", FullName: "Arjun Singh", BloodGroup: "B-", State: "Rajasthan", District: "Jaipur", City: "Malviya Nagar", Phone: "9876543216", Email: "arjun.s@example.com"},
	{ID: "ext_8", FullName: "Vivaan Joshi", BloodGroup: "AB-", State: "Gujarat", District: "Ahmedabad", City: "Satellite", Phone: "9876543217", Email: "vivaan.j@example.com"},
	{ID: "ext_9", FullName: "Sarthak Patil", BloodGroup: "O+", State: "Maharashtra", District: "Pune", City: "Kothrud", Phone: "9876543218", Email: "sarthak.p@example.com"},
	{ID: "ext_10", FullName: "Rohan Mehta", BloodGroup: "A+", State: "West Bengal", District: "Kolkata", City: "Salt Lake", Phone: "9876543219", Email: "rohan.m@example.com"},
	{ID: "ext_11", FullName: "Kabir Das", BloodGroup: "B+", State: "Odisha", District: "Khordha", City: "Bhubaneswar", Phone: "9876543220", Email: "kabir.d@example.com"},
	{ID: "ext_12", FullName: "Ananya Iyer", BloodGroup: "O+", State: "Tamil Nadu", District: "Chennai", City: "Adyar", Phone: "9876543221", Email: "ananya.i@example.com"},
	{ID: "ext_13", FullName: "Diya Menon", BloodGroup: "A+", State: "Kerala", District: "Ernakulam", City: "Kochi", Phone: "9876543222", Email: "diya.m@example.com"},
	{ID: "ext_14", FullName: "Meera Nair", BloodGroup: "B+", State: "Kerala", District: "Thiruvananthapuram", City: "Kowdiar", Phone: "9876543223", Email: "meera.n@example.com"},
}
