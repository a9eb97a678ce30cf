package zone

// aliases maps common abbreviations to canonical identifiers. Many-to-one:
// both the standard and daylight form of a North American zone resolve to the
// same identifier. Keys are lowercase; lookups lowercase their input.
var aliases = map[string]string{
	"utc": "UTC",
	"gmt": "UTC",
	"z":   "UTC",

	// North America
	"et":   "America/New_York",
	"est":  "America/New_York",
	"edt":  "America/New_York",
	"ct":   "America/Chicago",
	"cst":  "America/Chicago",
	"cdt":  "America/Chicago",
	"mt":   "America/Denver",
	"mst":  "America/Denver",
	"mdt":  "America/Denver",
	"pt":   "America/Los_Angeles",
	"pst":  "America/Los_Angeles",
	"pdt":  "America/Los_Angeles",
	"akst": "America/Anchorage",
	"akdt": "America/Anchorage",
	"hst":  "Pacific/Honolulu",

	// Europe
	"bst":  "Europe/London",
	"wet":  "Europe/Lisbon",
	"west": "Europe/Lisbon",
	"cet":  "Europe/Berlin",
	"cest": "Europe/Berlin",
	"eet":  "Europe/Athens",
	"eest": "Europe/Athens",
	"msk":  "Europe/Moscow",

	// Asia / Middle East
	"ist": "Asia/Kolkata",
	"pkt": "Asia/Karachi",
	"gst": "Asia/Dubai",
	"sgt": "Asia/Singapore",
	"hkt": "Asia/Hong_Kong",
	"jst": "Asia/Tokyo",
	"kst": "Asia/Seoul",
	"ict": "Asia/Bangkok",

	// Oceania
	"awst": "Australia/Perth",
	"acst": "Australia/Adelaide",
	"acdt": "Australia/Adelaide",
	"aest": "Australia/Sydney",
	"aedt": "Australia/Sydney",
	"nzst": "Pacific/Auckland",
	"nzdt": "Pacific/Auckland",

	// South America / Africa
	"brt":  "America/Sao_Paulo",
	"art":  "America/Argentina/Buenos_Aires",
	"sast": "Africa/Johannesburg",
	"wat":  "Africa/Lagos",
	"eat":  "Africa/Nairobi",
}
