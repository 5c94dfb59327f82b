// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/get-papers/pkg/types"
)

// Parse decodes an efetch PubmedArticleSet document into papers, one per
// PubmedArticle element, in document order. Blank input yields nil. A
// document that fails to decode is logged and dropped as a whole.
func Parse(data []byte, log *slog.Logger) []*types.Paper {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	articles, err := decodeArticles(data)
	if err != nil {
		log.Error("failed to parse XML", "error", err)
		return nil
	}

	papers := make([]*types.Paper, 0, len(articles))
	for _, a := range articles {
		papers = append(papers, a.toPaper())
	}
	log.Info("parsed papers from XML", "count", len(papers))
	return papers
}

// decodeArticles walks the token stream and decodes every PubmedArticle
// element wherever it sits. The whole stream is consumed so trailing
// garbage still fails the batch.
func decodeArticles(data []byte) ([]pubmedArticle, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// efetch documents carry a DOCTYPE and named entities from the NLM DTD.
	dec.Strict = true
	dec.Entity = xml.HTMLEntity

	var articles []pubmedArticle
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "PubmedArticle" {
			continue
		}
		var a pubmedArticle
		if err := dec.DecodeElement(&a, &start); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if !sawRoot {
		return nil, errors.New("document has no root element")
	}
	return articles, nil
}

func (a pubmedArticle) toPaper() *types.Paper {
	mc := a.MedlineCitation
	p := &types.Paper{
		PMID:  strings.TrimSpace(mc.PMID.String()),
		Title: types.NormalizeTitle(mc.Article.ArticleTitle.String()),
	}

	if d := mc.Article.Journal.JournalIssue.PubDate; d != nil {
		p.PublicationDate = types.FormatDate(d.Year.String(), d.Month.String(), d.Day.String())
	} else {
		p.PublicationDate = types.FormatDate("", "", "")
	}

	p.Authors = make([]types.Author, 0, len(mc.Article.AuthorList.Authors))
	for _, au := range mc.Article.AuthorList.Authors {
		author := types.Author{
			LastName: au.LastName.String(),
			ForeName: au.ForeName.String(),
			Initials: au.Initials.String(),
		}
		if len(au.AffiliationInfo) > 0 {
			author.Affiliation = au.AffiliationInfo[0].Affiliation.String()
		}
		p.Authors = append(p.Authors, author)
	}
	return p
}

// PubMed efetch XML structures. Only the fields screening needs are mapped.
type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    text    `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Journal      journal    `xml:"Journal"`
	ArticleTitle text       `xml:"ArticleTitle"`
	AuthorList   authorList `xml:"AuthorList"`
}

type journal struct {
	JournalIssue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate *pubDate `xml:"PubDate"`
}

type pubDate struct {
	Year  text `xml:"Year"`
	Month text `xml:"Month"`
	Day   text `xml:"Day"`
}

type authorList struct {
	Authors []author `xml:"Author"`
}

type author struct {
	LastName        text              `xml:"LastName"`
	ForeName        text              `xml:"ForeName"`
	Initials        text              `xml:"Initials"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation text `xml:"Affiliation"`
}

// text collects all character data inside an element, including text
// nested in inline markup such as <i> or <sup>. Only the first occurrence
// of a repeated element is kept.
type text struct {
	value string
	set   bool
}

func (t *text) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.CharData:
			b.Write(tt)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth > 0 {
				depth--
				continue
			}
			if !t.set {
				t.value = b.String()
				t.set = true
			}
			return nil
		}
	}
}

func (t text) String() string { return t.value }
