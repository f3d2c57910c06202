package apetag

// Reference tags, with and without the trailing ID3v1.1 tag.
const (
	emptyTagAPE = "APETAGEX\xd0\x07\x00\x00 \x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\xa0\x00\x00\x00\x00\x00\x00\x00\x00APETAGEX\xd0\x07\x00\x00" +
		" \x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x80\x00\x00\x00\x00" +
		"\x00\x00\x00\x00"
	emptyTagShadow = "TAG\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xff"

	exampleTagAPE = "APETAGEX\xd0\x07\x00\x00\xb0\x00\x00\x00\x06\x00\x00\x00\x00\x00" +
		"\x00\xa0\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00\x00" +
		"\x00\x00Track\x001\x04\x00\x00\x00\x00\x00\x00\x00Date\x002007" +
		"\x09\x00\x00\x00\x00\x00\x00\x00Comment\x00XXXX-0000\x0b\x00\x00" +
		"\x00\x00\x00\x00\x00Title\x00Love Cheese\x0b\x00\x00\x00\x00\x00" +
		"\x00\x00Artist\x00Test Artist\x16\x00\x00\x00\x00\x00\x00\x00Alb" +
		"um\x00Test Album\x00Other AlbumAPETAGEX\xd0\x07\x00\x00\xb0\x00" +
		"\x00\x00\x06\x00\x00\x00\x00\x00\x00\x80\x00\x00\x00\x00\x00\x00" +
		"\x00\x00"
	exampleTagShadow = "TAGLove Cheese\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00Test Artist\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00Test Album, " +
		"Other Album\x00\x00\x00\x00\x00\x00\x002007XXXX-0000\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x01\xff"

	exampleTag2APE = "APETAGEX\xd0\x07\x00\x00\x99\x00\x00\x00\x05\x00\x00\x00\x00\x00" +
		"\x00\xa0\x00\x00\x00\x00\x00\x00\x00\x00\x04\x00\x00\x00\x00\x00" +
		"\x00\x00Blah\x00Blah\x04\x00\x00\x00\x00\x00\x00\x00Date\x002007" +
		"\x09\x00\x00\x00\x00\x00\x00\x00Comment\x00XXXX-0000\x0b\x00\x00" +
		"\x00\x00\x00\x00\x00Artist\x00Test Artist\x16\x00\x00\x00\x00" +
		"\x00\x00\x00Album\x00Test Album\x00Other AlbumAPETAGEX\xd0\x07" +
		"\x00\x00\x99\x00\x00\x00\x05\x00\x00\x00\x00\x00\x00\x80\x00\x00" +
		"\x00\x00\x00\x00\x00\x00"
	exampleTag2Shadow = "TAG\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00Test" +
		" Artist\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00Test Album, Other Album\x00\x00\x00\x00\x00" +
		"\x00\x002007XXXX-0000\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xff"
)

const examplePretty = "Album: Test Album, Other Album\n" +
	"Artist: Test Artist\n" +
	"Comment: XXXX-0000\n" +
	"Date: 2007\n" +
	"Title: Love Cheese\n" +
	"Track: 1"

func exampleFields() map[string][]string {
	return map[string][]string{
		"Track":   {"1"},
		"Comment": {"XXXX-0000"},
		"Album":   {"Test Album", "Other Album"},
		"Title":   {"Love Cheese"},
		"Artist":  {"Test Artist"},
		"Date":    {"2007"},
	}
}

func exampleFields2() map[string][]string {
	return map[string][]string{
		"Blah":    {"Blah"},
		"Comment": {"XXXX-0000"},
		"Album":   {"Test Album", "Other Album"},
		"Artist":  {"Test Artist"},
		"Date":    {"2007"},
	}
}
