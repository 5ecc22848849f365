package parser

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
)

// WordLists carries caller-supplied contraction fragments. A non-empty
// list replaces the built-in default for its category; an empty list keeps
// the default. Words are compared case-insensitively.
type WordLists struct {
	BeganUnambiguous []string
	BeganAmbiguous   []string
	EndedUnambiguous []string
	EndedAmbiguous   []string
}

// Contractions is the oracle consulted by the quote emitter and the
// ambiguity resolver to distinguish apostrophes from boundary quotes. It is
// immutable after construction, so a single instance may serve any number
// of sequential conversions.
type Contractions struct {
	beganUnambiguous *hashset.Set
	beganAmbiguous   *hashset.Set
	endedUnambiguous *hashset.Set
	endedAmbiguous   *hashset.Set
}

// NewContractions builds an oracle from the given word lists, falling back
// to the built-in English defaults for every empty category.
func NewContractions(lists WordLists) *Contractions {
	return &Contractions{
		beganUnambiguous: toSet(lists.BeganUnambiguous, beganUnambiguous),
		beganAmbiguous:   toSet(lists.BeganAmbiguous, beganAmbiguous),
		endedUnambiguous: toSet(lists.EndedUnambiguous, endedUnambiguous),
		endedAmbiguous:   toSet(lists.EndedAmbiguous, endedAmbiguous),
	}
}

// DefaultWordLists returns a copy of the built-in contraction sets, for
// callers that append rather than replace.
func DefaultWordLists() WordLists {
	return WordLists{
		BeganUnambiguous: append([]string(nil), beganUnambiguous...),
		BeganAmbiguous:   append([]string(nil), beganAmbiguous...),
		EndedUnambiguous: append([]string(nil), endedUnambiguous...),
		EndedAmbiguous:   append([]string(nil), endedAmbiguous...),
	}
}

func toSet(words, fallback []string) *hashset.Set {
	if len(words) == 0 {
		words = fallback
	}
	set := hashset.New()
	for _, w := range words {
		set.Add(strings.ToLower(w))
	}
	return set
}

// BeganUnambiguously answers whether word is a contraction that always
// starts with an apostrophe. Called when a straight quote is followed by a
// word.
func (c *Contractions) BeganUnambiguously(word string) bool {
	return c.beganUnambiguous.Contains(strings.ToLower(word))
}

// BeganAmbiguously answers whether word could be a contraction but is also
// a valid word in non-contracted form.
func (c *Contractions) BeganAmbiguously(word string) bool {
	return c.beganAmbiguous.Contains(strings.ToLower(word))
}

// EndedUnambiguously answers whether word is a contraction that always
// finishes with an apostrophe.
func (c *Contractions) EndedUnambiguously(word string) bool {
	return c.endedUnambiguous.Contains(strings.ToLower(word))
}

// EndedAmbiguously answers whether a straight quote after word may be
// either an apostrophe or a closing quote. Words ending in s, z or x cover
// possessives; a trailing n on a word of more than one letter covers
// dropped-g gerunds while keeping the lone letter n unambiguous. A sentence can end
// with the letter o, so o' still matches the set.
func (c *Contractions) EndedAmbiguously(word string) bool {
	check := strings.ToLower(word)
	if c.endedAmbiguous.Contains(check) {
		return true
	}
	return strings.HasSuffix(check, "s") || strings.HasSuffix(check, "z") ||
		strings.HasSuffix(check, "x") ||
		len(check) > 1 && strings.HasSuffix(check, "n")
}

// boundedUnambiguously answers whether a word flanked by straight quotes
// on both sides ('n', 'owlin') reads as a contraction without doubt.
func (c *Contractions) boundedUnambiguously(word string) bool {
	return c.BeganUnambiguously(word) || c.EndedUnambiguously(word)
}

// Lists returns the resolved contraction sets, each sorted, for reporting.
func (c *Contractions) Lists() WordLists {
	return WordLists{
		BeganUnambiguous: sorted(c.beganUnambiguous),
		BeganAmbiguous:   sorted(c.beganAmbiguous),
		EndedUnambiguous: sorted(c.endedUnambiguous),
		EndedAmbiguous:   sorted(c.endedAmbiguous),
	}
}

func sorted(set *hashset.Set) []string {
	words := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		words = append(words, v.(string))
	}
	sort.Strings(words)
	return words
}

// Words having a straight apostrophe that cannot be mistaken for an
// opening single quote.
var beganUnambiguous = []string{
	"aporth", "boutcha", "boutchu", "cept", "dillo", "em", "fraid",
	"gainst", "n", "neath", "nother", "onna", "onna'", "pon", "s",
	"sblood", "scuse", "sfar", "sfoot", "t", "taint", "tain", "til",
	"tis", "tisn", "tshall", "twas", "twasn", "tween", "twere", "tweren",
	"twixt", "twon", "twou", "twould", "twouldn", "ve",
}

// Words having a straight apostrophe that may be either part of a
// contraction or a word that stands alone beside an opening single quote.
var beganAmbiguous = []string{
	"bout",  // about|boxing match
	"cause", // because|causal
	"choo",  // what you|choo choo train
	"e",     // he|e pluribus unum
	"ere",   // here|earlier
	"fro",   // afro|to and fro
	"ho",    // whore|ho ho!
	"kay",   // okay|letter K
	"lo",    // lo|lo and behold
	"re",    // are|regarding
	"sup",   // what's up|to sup
	"twill", // it will|twill fabric
	"um",    // them|utterance
	"zat",   // is that|Iranian village
}

var endedAmbiguous = []string{
	"gi", // give|martial arts garment
	"i",  // in|I
	"o",  // of|letter o
}

var endedUnambiguous = []string{
	"an",     // and
	"fo",     // for/before
	"frien",  // friend
	"jus",    // just
	"lor",    // lord
	"masel",  // myself
	"ol",     // old
	"sa",     // San (Francisco)
	"shif",   // shift
	"th",     // the
	"wha",    // what
	"worl",   // world
	// Top ~500 common -ing words as English contractions.
	"acceptin", "accompanyin", "accordin", "accountin", "achievin",
	"acquirin", "actin", "addin", "addressin", "adjoinin", "adoptin",
	"advancin", "advertisin", "affectin", "agin", "allowin", "amazin",
	"analyzin", "answerin", "anythin", "appearin", "applyin",
	"approachin", "arguin", "arisin", "arrivin", "askin", "assessin",
	"assumin", "attackin", "attemptin", "attendin", "avoidin", "bankin",
	"bargainin", "bearin", "beatin", "becomin", "beginnin", "bein",
	"believin", "belongin", "bendin", "bindin", "bleedin", "blessin",
	"blowin", "boilin", "borrowin", "breakin", "breathin", "breedin",
	"bringin", "broadcastin", "buildin", "burnin", "buyin", "calculatin",
	"callin", "carryin", "castin", "causin", "ceilin", "challengin",
	"changin", "checkin", "choosin", "claimin", "cleanin", "clearin",
	"climbin", "closin", "clothin", "collectin", "combinin", "comin",
	"commandin", "comparin", "compellin", "competin", "computin",
	"concernin", "concludin", "conditionin", "conductin", "conflictin",
	"connectin", "considerin", "consistin", "constructin", "consultin",
	"consumin", "containin", "continuin", "contractin", "contributin",
	"controllin", "convincin", "cookin", "coolin", "copin",
	"correspondin", "counselin", "countin", "couplin", "coverin",
	"creatin", "crossin", "cryin", "cuttin", "dancin", "darlin", "datin",
	"dealin", "decidin", "declarin", "declinin", "decreasin", "definin",
	"demandin", "denyin", "dependin", "descendin", "describin",
	"designin", "destroyin", "determinin", "developin", "differin",
	"dinin", "directin", "discussin", "distinguishin", "disturbin",
	"dividin", "doin", "drawin", "dressin", "drinkin", "drivin",
	"droppin", "dryin", "durin", "dwellin", "dyin", "eatin", "editin",
	"emergin", "employin", "enablin", "encouragin", "endin", "engagin",
	"engineerin", "enjoyin", "enterin", "establishin", "evaluatin",
	"evenin", "everythin", "examinin", "exceedin", "excitin", "excludin",
	"existin", "expandin", "expectin", "experiencin", "explainin",
	"explorin", "expressin", "extendin", "facin", "failin", "fallin",
	"farmin", "fascinatin", "feedin", "feelin", "fightin", "filin",
	"fillin", "financin", "findin", "firin", "fishin", "fittin", "fixin",
	"floatin", "flowin", "flyin", "focusin", "followin", "forcin",
	"foregoin", "formin", "forthcomin", "foundin", "freezin", "fuckin",
	"functionin", "fundin", "gainin", "gatherin", "generatin", "gettin",
	"givin", "goin", "governin", "grantin", "growin", "hackin",
	"handlin", "hangin", "happenin", "havin", "headin", "healin",
	"hearin", "heatin", "helpin", "hidin", "holdin", "hopin", "housin",
	"huntin", "identifyin", "imagin", "implementin", "imposin",
	"improvin", "includin", "increasin", "indicatin", "interestin",
	"interpretin", "introducin", "involvin", "joinin", "judgin",
	"keepin", "killin", "knowin", "lackin", "landin", "lastin",
	"laughin", "layin", "leadin", "leanin", "learnin", "leavin",
	"lettin", "liftin", "lightin", "lightnin", "limitin", "listenin",
	"listin", "livin", "loadin", "lookin", "losin", "lovin", "lowerin",
	"lyin", "maintainin", "makin", "managin", "manufacturin", "mappin",
	"marketin", "markin", "matchin", "meanin", "measurin", "meetin",
	"meltin", "minin", "misleadin", "missin", "mixin", "modelin",
	"monitorin", "mornin", "movin", "neighborin", "nothin", "notin",
	"notwithstandin", "nursin", "observin", "obtainin", "occurrin",
	"offerin", "offsprin", "ongoin", "openin", "operatin", "opposin",
	"orderin", "organizin", "outstandin", "overwhelmin", "packin",
	"paintin", "parkin", "participatin", "passin", "payin", "pendin",
	"performin", "pickin", "pissin", "placin", "plannin", "plantin",
	"playin", "pleasin", "pointin", "possessin", "preachin", "precedin",
	"preparin", "presentin", "preservin", "pressin", "prevailin",
	"preventin", "pricin", "printin", "proceedin", "processin",
	"producin", "programmin", "promisin", "promotin", "protectin",
	"providin", "provin", "publishin", "pullin", "purchasin", "pursuin",
	"pushin", "puttin", "questionin", "rangin", "ratin", "reachin",
	"readin", "reasonin", "receivin", "recognizin", "recordin",
	"reducin", "referrin", "reflectin", "refusin", "regardin",
	"regulatin", "relatin", "remainin", "rememberin", "removin",
	"renderin", "repeatin", "replacin", "reportin", "representin",
	"requirin", "respectin", "respondin", "restin", "resultin",
	"returnin", "revealin", "ridin", "risin", "rulin", "runnin",
	"sailin", "samplin", "satisfyin", "savin", "sayin", "scatterin",
	"schoolin", "screenin", "searchin", "securin", "seein", "seekin",
	"selectin", "sellin", "sendin", "separatin", "servin", "settin",
	"settlin", "sewin", "shakin", "shapin", "sharin", "shiftin",
	"shinin", "shippin", "shittin", "shootin", "shoppin", "showin",
	"singin", "sinkin", "sittin", "sleepin", "smilin", "smokin",
	"spankin", "solvin", "somethin", "speakin", "spellin", "spendin",
	"spinnin", "spittin", "spreadin", "standin", "starin", "startin",
	"statin", "stayin", "stealin", "sterlin", "stimulatin", "stirrin",
	"stoppin", "strengthenin", "stretchin", "strikin", "strugglin",
	"studyin", "succeedin", "sufferin", "suggestin", "supplyin",
	"supportin", "surprisin", "surroundin", "survivin", "sweepin",
	"swellin", "swimmin", "switchin", "takin", "talkin", "teachin",
	"tellin", "testin", "thinkin", "threatenin", "throwin", "timin",
	"touchin", "tradin", "trainin", "travelin", "treatin", "tremblin",
	"tryin", "turnin", "underlyin", "understandin", "undertakin",
	"unwillin", "usin", "varyin", "viewin", "visitin", "votin",
	"waitin", "walkin", "wanderin", "wantin", "warnin", "washin",
	"watchin", "wearin", "weddin", "whackin", "willin", "windin",
	"winnin", "wishin", "wonderin", "workin", "writin", "yieldin",
}
