package profile

import (
	"encoding/xml"
	"io"
	"log"
	"strings"

	"github.com/carbocation/pfx"
	"golang.org/x/net/html/charset"
)

// Batches exported by typing instruments look like:
//
//	<ProfileBatch>
//	  <Profile SampleID="S001">
//	    <Locus Name="D3S1358">15,16</Locus>
//	    <Locus Name="TH01">9,9.3</Locus>
//	  </Profile>
//	</ProfileBatch>
type xmlBatch struct {
	XMLName  xml.Name     `xml:"ProfileBatch"`
	Profiles []xmlProfile `xml:"Profile"`
}

type xmlProfile struct {
	SampleID string     `xml:"SampleID,attr"`
	Loci     []xmlLocus `xml:"Locus"`
}

type xmlLocus struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:",chardata"`
}

// ReadXMLTable loads a profile table from an XML batch. The schema is the
// union of locus names in first-seen order, so profiles within one batch may
// type different locus panels.
func ReadXMLTable(r io.Reader) (*Table, error) {
	var batch xmlBatch

	decoder := xml.NewDecoder(r)
	// Instrument exports are frequently ISO-8859-1 rather than UTF-8.
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&batch); err != nil {
		return nil, pfx.Err(err)
	}

	loci := make([]string, 0)
	locusIndex := make(map[string]int)
	for _, p := range batch.Profiles {
		for _, l := range p.Loci {
			name := strings.TrimSpace(l.Name)
			if name == "" {
				continue
			}
			if _, known := locusIndex[name]; known {
				continue
			}
			locusIndex[name] = len(loci)
			loci = append(loci, name)
		}
	}

	t := &Table{Loci: loci, Records: make([]Record, 0, len(batch.Profiles))}

	var skippedBlankID int
	for _, p := range batch.Profiles {
		id := strings.TrimSpace(p.SampleID)
		if id == "" {
			skippedBlankID++
			continue
		}

		alleles := make([]AlleleSet, len(loci))
		for _, l := range p.Loci {
			idx, known := locusIndex[strings.TrimSpace(l.Name)]
			if !known {
				continue
			}
			alleles[idx] = parseAllelesCached(l.Value)
		}

		t.Records = append(t.Records, Record{SampleID: id, Alleles: alleles})
	}

	if skippedBlankID > 0 {
		log.Println("Skipped", skippedBlankID, "batch profiles with a blank sample identifier")
	}

	return t, nil
}
