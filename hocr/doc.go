// Package hocr parses hOCR documents into pipeline candidates.
//
// hOCR is the de-facto interchange format for OCR output: an HTML document
// whose elements carry recognition geometry in title attributes. Engines
// such as Tesseract emit it directly, which makes it the easiest way to
// feed saved recognition output into the fusion pipeline:
//
//	page, err := hocr.Parse(f)
//	if err != nil {
//	    // handle error
//	}
//	candidate := page.Candidate(roi)
//
// Only the line and word levels are modeled ([Line], [Word]); paragraph and
// block structure is ignored because the pipeline performs its own line
// clustering. Words can be filtered by recognition confidence via
// [ParseConfig].
package hocr
