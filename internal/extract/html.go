package extract

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTML returns the text content of the document body with script and style
// elements removed. The whole document is used when there is no body.
func ExtractHTML(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	if b := doc.Find("body"); b.Length() > 0 {
		return b.Text(), nil
	}
	return doc.Text(), nil
}
