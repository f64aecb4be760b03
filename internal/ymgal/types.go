package ymgal

// Unknown is the sentinel placed in string fields the catalog left empty.
const Unknown = "unknown"

// GameRecord is one archive entry from an accurate search. Records are
// immutable once parsed; a PublisherID of 0 means the archive carries no
// developer reference.
type GameRecord struct {
	ID            int64
	PublisherID   int64
	CoverURL      string
	Title         string
	ReleaseDate   string
	AgeRestricted bool
	HasChinese    bool
	ChineseTitle  string
	Introduction  string
}

// Publisher is a standalone organization record from an org lookup.
type Publisher struct {
	Name         string
	ChineseName  string
	Introduction string
	Country      string
}

// MergedRecord is a GameRecord with its publisher reference resolved into
// denormalized name fields. The reference itself is gone at the type level:
// a merged record can never carry both the raw id and the resolved names.
type MergedRecord struct {
	ID                   int64
	CoverURL             string
	Title                string
	ReleaseDate          string
	AgeRestricted        bool
	HasChinese           bool
	ChineseTitle         string
	Introduction         string
	PublisherName        string
	PublisherChineseName string
}

// WithPublisher builds the merged form of the record, replacing the
// publisher reference with the given resolved names.
func (r *GameRecord) WithPublisher(name, chineseName string) *MergedRecord {
	return &MergedRecord{
		ID:                   r.ID,
		CoverURL:             r.CoverURL,
		Title:                r.Title,
		ReleaseDate:          r.ReleaseDate,
		AgeRestricted:        r.AgeRestricted,
		HasChinese:           r.HasChinese,
		ChineseTitle:         r.ChineseTitle,
		Introduction:         r.Introduction,
		PublisherName:        orUnknown(name),
		PublisherChineseName: orUnknown(chineseName),
	}
}

// orUnknown substitutes the sentinel for fields the catalog left empty.
func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
