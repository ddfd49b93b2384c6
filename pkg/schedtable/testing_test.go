package schedtable

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/parser"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<schedule>
  <day date="2014-07-21">
    <entry id="1">
      <start>0900</start><duration>45</duration><room>C01,B09</room>
      <title>Opening Keynote</title><category>Keynote</category>
      <speakers><speaker><name>Ada</name></speaker></speakers>
    </entry>
    <entry id="2">
      <start>1000</start><duration>30</duration><room>ALL</room>
      <title>Coffee</title>
    </entry>
    <entry id="3">
      <start>0915</start><duration>15</duration><room>A08</room>
      <title>Lightning Talk</title>
    </entry>
    <entry id="4">
      <start>0930</start><duration>30</duration><room>X99</room>
      <title>Elsewhere</title>
    </entry>
  </day>
  <day date="2014-07-22">
    <entry id="5">
      <start>0900</start><duration>30</duration><room>C01</room>
      <title>First</title>
    </entry>
    <entry id="6">
      <start>0915</start><duration>15</duration><room>C01,B09</room>
      <title>Double Booked</title>
    </entry>
  </day>
</schedule>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Layout = parser.SlotLayout{HourStart: 9, HourEnd: 12, Resolution: 15}
	opts.Rooms = []string{"C01", "B09", "A08"}
	opts.Logger = log.New(io.Discard)
	return opts
}
