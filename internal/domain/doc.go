// Package domain models NOAA Storm Events database records and the small set
// of derivations the damage report performs on them.
//
// # Data Source
//
// Records come from the NOAA National Weather Service (NWS) Storm Events
// database, distributed as a single delimited file covering 1950 onward.
// Each row is one reported weather event. The columns this report consumes:
//
//	EVTYPE      free-form event-type label ("TORNADO", "TSTM WIND", ...)
//	BGN_DATE    begin date-time as text, e.g. "4/28/2011 0:00:00"
//	FATALITIES  direct fatality count (stored as a decimal, "15.00")
//	INJURIES    injury count, same encoding
//	PROPDMG     property damage magnitude, 3 significant digits
//	PROPDMGEXP  property damage scale suffix
//	CROPDMG     crop damage magnitude
//	CROPDMGEXP  crop damage scale suffix
//	REMARKS     free-text narrative, unused by the numeric outputs
//
// # NWS Data Conventions
//
// Date format:
//
//	"M/D/YYYY H:MM:SS" with the time portion always midnight in this dataset.
//	Only the leading date token is meaningful; it is parsed as
//	month/day/4-digit-year by [ParseBeginDate]. Values that do not match yield
//	the zero time and the record drops out of year-bucketed views.
//
// Damage encoding:
//
//	A magnitude column paired with a scale-suffix column. Per the reporting
//	convention the suffix is "K" for thousands, "M" for millions and "B" for
//	billions of dollars; lowercase "k" and "m" occur and carry the same
//	meaning. The data also contains stray suffixes (digits "0" through "9",
//	"?", "+", "-", "h", blank) whose scale cannot be reconciled against the
//	remarks text, so [UnitMultiplier] deliberately treats them as 1 rather
//	than guessing. This is a documented limitation of the source study.
//
// Event-type labels:
//
//	EVTYPE is not a controlled vocabulary: the same phenomenon appears under
//	different casings and abbreviations ("TSTM WIND" vs "THUNDERSTORM WIND").
//	Labels are aggregated by exact string equality on purpose; canonicalizing
//	them is an analytical choice the report does not make for the reader.
package domain
