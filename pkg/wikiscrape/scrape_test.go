package wikiscrape

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testCategoryTitle = "Κατηγορία:Τεστ_κατηγορία"

func testCategory() Category {
	return Category{
		Label:    LabelNeuterNoun,
		Title:    testCategoryTitle,
		Suffixes: []string{"ιο", "ια"},
	}
}

func categoryPage(words []string, nextHref string) string {
	// The heading anchor must never leak into the member words.
	page := `<html><body><div id="mw-pages"><div class="mw-category-group">` +
		`<h3><a href="#top">Α</a></h3><ul>`
	for _, w := range words {
		page += fmt.Sprintf(`<li><a href="/wiki/%s">%s</a></li>`, w, w)
	}
	page += `</ul></div>`
	if nextHref != "" {
		page += fmt.Sprintf(
			`<a href="%s" title="Κατηγορία:Τεστ κατηγορία">επόμενη σελίδα</a>`,
			nextHref)
	}
	page += `</div></body></html>`
	return page
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, "synbuild-test", 5*time.Second)
}

func TestScrapeCategorySinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, categoryPage([]string{"μπάνιο", "δίκια"}, ""))
	}))
	defer srv.Close()

	words, err := newTestClient(srv).ScrapeCategory(testCategory())
	require.NoError(t, err)
	assert.Equal(t, []string{"μπάνιο", "δίκια"}, words)
}

func TestScrapeCategoryFollowsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wiki/" + "Κατηγορία:Τεστ_κατηγορία":
			fmt.Fprint(w, categoryPage([]string{"μπάνιο"}, "/wiki/page2"))
		case "/wiki/page2":
			fmt.Fprint(w, categoryPage([]string{"δίκια"}, ""))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	words, err := newTestClient(srv).ScrapeCategory(testCategory())
	require.NoError(t, err)
	assert.Equal(t, []string{"μπάνιο", "δίκια"}, words)
}

func TestScrapeCategoryStopsOnRepeatedPage(t *testing.T) {
	// page2 links back to the first page; the content digest guard must
	// break the cycle instead of looping.
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Path {
		case "/wiki/" + "Κατηγορία:Τεστ_κατηγορία":
			fmt.Fprint(w, categoryPage([]string{"μπάνιο"}, "/wiki/page2"))
		case "/wiki/page2":
			fmt.Fprint(w, categoryPage([]string{"δίκια"}, "/wiki/"+testCategoryTitle))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	words, err := newTestClient(srv).ScrapeCategory(testCategory())
	require.NoError(t, err)
	assert.Equal(t, []string{"μπάνιο", "δίκια"}, words)
	assert.Equal(t, 3, requests)
}

func TestScrapeCategoryKeepsPartialOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wiki/" + "Κατηγορία:Τεστ_κατηγορία":
			fmt.Fprint(w, categoryPage([]string{"μπάνιο"}, "/wiki/page2"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	words, err := newTestClient(srv).ScrapeCategory(testCategory())
	require.Error(t, err)
	assert.Equal(t, []string{"μπάνιο"}, words)
}

func TestMemberWordsSkipsHeadingAnchors(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(categoryPage([]string{"μπάνιο", "δίκια"}, "")))
	require.NoError(t, err)
	assert.Equal(t, []string{"μπάνιο", "δίκια"}, memberWords(doc))
}

func TestPageGuard(t *testing.T) {
	guard := newPageGuard()
	assert.False(t, guard.Visit("page one"))
	assert.False(t, guard.Visit("page two"))
	assert.True(t, guard.Visit("page one"))
	assert.True(t, guard.Visit("page two"))
	assert.False(t, guard.Visit("page three"))
}

func TestPostprocess(t *testing.T) {
	byLabel := map[Label][]string{
		LabelNeuterNoun: {
			"μπάνιο",
			"δίκια",
			"Χιόνια", // capitalized, dropped
			"-ιο",    // redirect stub, dropped
			"ο",      // too short
			"καράβι", // wrong ending
		},
		LabelFeminineNoun: {"αρρώστια"},
	}

	got := Postprocess(byLabel)
	want := map[string][]string{
		"noun_neut_ιο": {"μπάνιο"},
		"noun_neut_ια": {"δίκια"},
		"noun_fem_ια":  {"αρρώστια"},
	}
	assert.Equal(t, want, got)
}

func TestCategoriesSkipPronouns(t *testing.T) {
	for _, cat := range Categories() {
		assert.NotContains(t, cat.Title, "Αντωνυμίες")
	}
}
