package profile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/strmatch"
)

var BufferSize = 4096 * 8

// Header names accepted for the sample identifier column, checked
// case-insensitively. The first matching column wins.
var identifierColumns = []string{"SampleID", "sample_id", "PersonID", "person_id", "ID"}

// OpenTable loads a profile table from path, which may be local or a gs://
// URL and may be gzip/zip/xz/zlib/bzip2 compressed. The reader is chosen by
// extension: .xls workbooks and .xml batches have dedicated readers;
// everything else is treated as delimited text with the delimiter sniffed
// from content.
func OpenTable(path string, client *storage.Client) (*Table, error) {
	path = strmatch.ExpandHome(path)

	name := strings.ToLower(path)
	for _, ext := range []string{".gz", ".xz", ".bz2", ".zip", ".z"} {
		name = strings.TrimSuffix(name, ext)
	}

	// XLS needs random access, so it opens the (local) path itself.
	if strings.HasSuffix(name, ".xls") {
		return ReadXLSTable(path)
	}

	rs, _, err := strmatch.MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rs.Close()

	rc, err := strmatch.MaybeDecompress(rs)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	if strings.HasSuffix(name, ".xml") {
		return ReadXMLTable(rc)
	}

	return ReadTable(rc)
}

// ReadTable parses delimited text into a Table. The first row is the header;
// one column must identify the sample and every other column is a locus.
// Records with a blank identifier are counted, logged, and skipped. Malformed
// allele fields never fail the load; they parse as absent.
func ReadTable(r io.Reader) (*Table, error) {
	br := bufio.NewReaderSize(r, BufferSize)

	// Sniff the delimiter from the leading bytes without consuming them.
	sample, err := br.Peek(BufferSize)
	if len(sample) == 0 {
		if err != nil && err != io.EOF {
			return nil, pfx.Err(err)
		}
		return nil, SchemaError{Reason: "empty input"}
	}
	delim := strmatch.DetermineDelimiter(bytes.NewReader(sample))
	log.Printf("Determined delimiter to be %q\n", delim)

	reader := csv.NewReader(br)
	reader.Comma = delim

	head, err := reader.Read()
	if err == io.EOF {
		return nil, SchemaError{Reason: "empty input"}
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	idCol, loci, err := parseHeader(head)
	if err != nil {
		return nil, err
	}

	t := &Table{Loci: loci, Records: make([]Record, 0, 1024)}

	var skippedBlankID, skippedShortRow int
	for sampleNum := 1; ; sampleNum++ {
		if sampleNum%10000 == 0 {
			log.Println("Saw sample", sampleNum)
		}

		row, err := reader.Read()
		if err != nil && err == io.EOF {
			break
		} else if errors.Is(err, csv.ErrFieldCount) {
			// A row that does not match the header is dropped on its own;
			// it does not abort the rest of the load.
			skippedShortRow++
			continue
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		rec, ok := recordFromRow(row, idCol)
		if !ok {
			skippedBlankID++
			continue
		}

		t.Records = append(t.Records, rec)
	}

	if skippedBlankID > 0 {
		log.Println("Skipped", skippedBlankID, "records with a blank sample identifier")
	}
	if skippedShortRow > 0 {
		log.Println("Skipped", skippedShortRow, "records whose field count did not match the header")
	}

	return t, nil
}

// parseHeader locates the identifier column and collects the locus names in
// file order. A missing identifier column or a duplicated locus name is a
// SchemaError.
func parseHeader(head []string) (int, []string, error) {
	idCol := -1
	for i, name := range head {
		if isIdentifierColumn(name) {
			idCol = i
			break
		}
	}
	if idCol == -1 {
		return 0, nil, SchemaError{Reason: fmt.Sprintf("no identifier column among %v", head)}
	}

	loci := make([]string, 0, len(head)-1)
	seen := make(map[string]struct{}, len(head))
	for i, name := range head {
		if i == idCol {
			continue
		}

		name = strings.TrimSpace(name)
		if _, dup := seen[name]; dup {
			return 0, nil, SchemaError{Reason: "duplicate locus column " + name}
		}
		seen[name] = struct{}{}

		loci = append(loci, name)
	}

	return idCol, loci, nil
}

func isIdentifierColumn(name string) bool {
	name = strings.TrimSpace(name)
	for _, candidate := range identifierColumns {
		if strings.EqualFold(name, candidate) {
			return true
		}
	}

	return false
}

// recordFromRow builds one Record, with the allele fields in header order and
// the identifier column removed. Rows with a blank identifier are rejected.
func recordFromRow(row []string, idCol int) (Record, bool) {
	id := strings.TrimSpace(row[idCol])
	if id == "" {
		return Record{}, false
	}

	alleles := make([]AlleleSet, 0, len(row)-1)
	for i, field := range row {
		if i == idCol {
			continue
		}
		alleles = append(alleles, parseAllelesCached(field))
	}

	return Record{SampleID: id, Alleles: alleles}, true
}
