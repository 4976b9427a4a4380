package wikilink

import "strings"

// Testament identifies which part of the canon a book belongs to.
type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Book describes one book of the French Catholic canon.
type Book struct {
	Name             string    // French display name used in wiki references, e.g. "Matthieu"
	NameEN           string    // English name
	Slug             string    // URL segment under /bible/
	OSIS             string    // OSIS book identifier, e.g. "Matt"
	Testament        Testament // old or new
	Position         int       // canonical order, 1-based
	Chapters         int       // number of chapters
	Deuterocanonical bool
}

// books is the canonical book table. Some slugs ("geneses", "deuterome") do not
// match Slugify of the display name; existing routes depend on them, so they
// must stay as they are.
var books = []Book{
	{"Genèse", "Genesis", "geneses", "Gen", TestamentOld, 1, 50, false},
	{"Exode", "Exodus", "exode", "Exod", TestamentOld, 2, 40, false},
	{"Lévitique", "Leviticus", "levitique", "Lev", TestamentOld, 3, 27, false},
	{"Nombres", "Numbers", "nombres", "Num", TestamentOld, 4, 36, false},
	{"Deutéronome", "Deuteronomy", "deuterome", "Deut", TestamentOld, 5, 34, false},
	{"Josué", "Joshua", "josue", "Josh", TestamentOld, 6, 24, false},
	{"Juges", "Judges", "juges", "Judg", TestamentOld, 7, 21, false},
	{"Ruth", "Ruth", "ruth", "Ruth", TestamentOld, 8, 4, false},
	{"1 Samuel", "1 Samuel", "1-samuel", "1Sam", TestamentOld, 9, 31, false},
	{"2 Samuel", "2 Samuel", "2-samuel", "2Sam", TestamentOld, 10, 24, false},
	{"1 Rois", "1 Kings", "1-rois", "1Kgs", TestamentOld, 11, 22, false},
	{"2 Rois", "2 Kings", "2-rois", "2Kgs", TestamentOld, 12, 25, false},
	{"1 Chroniques", "1 Chronicles", "1-chroniques", "1Chr", TestamentOld, 13, 29, false},
	{"2 Chroniques", "2 Chronicles", "2-chroniques", "2Chr", TestamentOld, 14, 36, false},
	{"Esdras", "Ezra", "esdras", "Ezra", TestamentOld, 15, 10, false},
	{"Néhémie", "Nehemiah", "nehemie", "Neh", TestamentOld, 16, 13, false},
	{"Tobie", "Tobit", "tobie", "Tob", TestamentOld, 17, 14, true},
	{"Judith", "Judith", "judith", "Jdt", TestamentOld, 18, 16, true},
	{"Esther", "Esther", "esther", "Esth", TestamentOld, 19, 10, false},
	{"1 Maccabées", "1 Maccabees", "1-maccabees", "1Macc", TestamentOld, 20, 16, true},
	{"2 Maccabées", "2 Maccabees", "2-maccabees", "2Macc", TestamentOld, 21, 15, true},
	{"Job", "Job", "job", "Job", TestamentOld, 22, 42, false},
	{"Psaumes", "Psalms", "psaumes", "Ps", TestamentOld, 23, 150, false},
	{"Proverbes", "Proverbs", "proverbes", "Prov", TestamentOld, 24, 31, false},
	{"Ecclésiaste", "Ecclesiastes", "ecclesiaste", "Eccl", TestamentOld, 25, 12, false},
	{"Cantique des Cantiques", "Song of Songs", "cantique-des-cantiques", "Song", TestamentOld, 26, 8, false},
	{"Sagesse", "Wisdom", "sagesse", "Wis", TestamentOld, 27, 19, true},
	{"Siracide", "Sirach", "siracide", "Sir", TestamentOld, 28, 51, true},
	{"Isaïe", "Isaiah", "isaie", "Isa", TestamentOld, 29, 66, false},
	{"Jérémie", "Jeremiah", "jeremie", "Jer", TestamentOld, 30, 52, false},
	{"Lamentations", "Lamentations", "lamentations", "Lam", TestamentOld, 31, 5, false},
	{"Baruch", "Baruch", "baruch", "Bar", TestamentOld, 32, 6, true},
	{"Ézéchiel", "Ezekiel", "ezechiel", "Ezek", TestamentOld, 33, 48, false},
	{"Daniel", "Daniel", "daniel", "Dan", TestamentOld, 34, 14, false},
	{"Osée", "Hosea", "osee", "Hos", TestamentOld, 35, 14, false},
	{"Joël", "Joel", "joel", "Joel", TestamentOld, 36, 4, false},
	{"Amos", "Amos", "amos", "Amos", TestamentOld, 37, 9, false},
	{"Abdias", "Obadiah", "abdias", "Obad", TestamentOld, 38, 1, false},
	{"Jonas", "Jonah", "jonas", "Jonah", TestamentOld, 39, 4, false},
	{"Michée", "Micah", "michee", "Mic", TestamentOld, 40, 7, false},
	{"Nahum", "Nahum", "nahum", "Nah", TestamentOld, 41, 3, false},
	{"Habacuc", "Habakkuk", "habacuc", "Hab", TestamentOld, 42, 3, false},
	{"Sophonie", "Zephaniah", "sophonie", "Zeph", TestamentOld, 43, 3, false},
	{"Aggée", "Haggai", "aggee", "Hag", TestamentOld, 44, 2, false},
	{"Zacharie", "Zechariah", "zacharie", "Zech", TestamentOld, 45, 14, false},
	{"Malachie", "Malachi", "malachie", "Mal", TestamentOld, 46, 3, false},
	{"Matthieu", "Matthew", "matthieu", "Matt", TestamentNew, 47, 28, false},
	{"Marc", "Mark", "marc", "Mark", TestamentNew, 48, 16, false},
	{"Luc", "Luke", "luc", "Luke", TestamentNew, 49, 24, false},
	{"Jean", "John", "jean", "John", TestamentNew, 50, 21, false},
	{"Actes des Apôtres", "Acts", "actes", "Acts", TestamentNew, 51, 28, false},
	{"Romains", "Romans", "romains", "Rom", TestamentNew, 52, 16, false},
	{"1 Corinthiens", "1 Corinthians", "1-corinthiens", "1Cor", TestamentNew, 53, 16, false},
	{"2 Corinthiens", "2 Corinthians", "2-corinthiens", "2Cor", TestamentNew, 54, 13, false},
	{"Galates", "Galatians", "galates", "Gal", TestamentNew, 55, 6, false},
	{"Éphésiens", "Ephesians", "ephesiens", "Eph", TestamentNew, 56, 6, false},
	{"Philippiens", "Philippians", "philippiens", "Phil", TestamentNew, 57, 4, false},
	{"Colossiens", "Colossians", "colossiens", "Col", TestamentNew, 58, 4, false},
	{"1 Thessaloniciens", "1 Thessalonians", "1-thessaloniciens", "1Thess", TestamentNew, 59, 5, false},
	{"2 Thessaloniciens", "2 Thessalonians", "2-thessaloniciens", "2Thess", TestamentNew, 60, 3, false},
	{"1 Timothée", "1 Timothy", "1-timothee", "1Tim", TestamentNew, 61, 6, false},
	{"2 Timothée", "2 Timothy", "2-timothee", "2Tim", TestamentNew, 62, 4, false},
	{"Tite", "Titus", "tite", "Titus", TestamentNew, 63, 3, false},
	{"Philémon", "Philemon", "philemon", "Phlm", TestamentNew, 64, 1, false},
	{"Hébreux", "Hebrews", "hebreux", "Heb", TestamentNew, 65, 13, false},
	{"Jacques", "James", "jacques", "Jas", TestamentNew, 66, 5, false},
	{"1 Pierre", "1 Peter", "1-pierre", "1Pet", TestamentNew, 67, 5, false},
	{"2 Pierre", "2 Peter", "2-pierre", "2Pet", TestamentNew, 68, 3, false},
	{"1 Jean", "1 John", "1-jean", "1John", TestamentNew, 69, 5, false},
	{"2 Jean", "2 John", "2-jean", "2John", TestamentNew, 70, 1, false},
	{"3 Jean", "3 John", "3-jean", "3John", TestamentNew, 71, 1, false},
	{"Jude", "Jude", "jude", "Jude", TestamentNew, 72, 1, false},
	{"Apocalypse", "Revelation", "apocalypse", "Rev", TestamentNew, 73, 22, false},
}

// Lookup indexes, built once at init and never written afterwards.
var (
	slugByName = make(map[string]string, len(books))
	bookBySlug = make(map[string]Book, len(books))
	bookByOSIS = make(map[string]Book, len(books))
)

func init() {
	for _, b := range books {
		slugByName[b.Name] = b.Slug
		bookBySlug[b.Slug] = b
		bookByOSIS[strings.ToLower(b.OSIS)] = b
	}
}

// Books returns a copy of the book table in canonical order.
func Books() []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}

// BookSlug returns the slug registered for an exact French display name.
func BookSlug(name string) (string, bool) {
	slug, ok := slugByName[name]
	return slug, ok
}

// BookBySlug returns the book registered under slug.
func BookBySlug(slug string) (Book, bool) {
	b, ok := bookBySlug[slug]
	return b, ok
}

// BookByOSIS returns the book with the given OSIS identifier (case-insensitive).
func BookByOSIS(id string) (Book, bool) {
	b, ok := bookByOSIS[strings.ToLower(id)]
	return b, ok
}

// bookToSlug resolves a book name through the table, falling back to Slugify.
func bookToSlug(name string) string {
	if slug, ok := BookSlug(name); ok {
		return slug
	}
	return Slugify(name)
}
