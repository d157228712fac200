// Package i18n translates UI strings and dates for the two supported
// languages. Keys are the English text; Italian is looked up in a catalog.
package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/mmcdole/airdate/internal/domain"
)

var italian = map[string]string{
	"Upcoming Releases":                         "Prossime Uscite",
	"Discover the anime arriving this season.":  "Scopri gli anime in arrivo questa stagione.",
	"Search by title...":                        "Cerca per titolo...",
	"Month":                                     "Mese",
	"Year":                                      "Anno",
	"All Months":                                "Tutti i mesi",
	"All Years":                                 "Tutti",
	"All Studios":                               "Tutti gli studi",
	"All Genres":                                "Tutti i generi",
	"Reset":                                     "Resetta",
	"Filters reset":                             "Filtri azzerati",
	"No results found.":                         "Nessun risultato trovato.",
	"Undated":                                   "Senza data",
	"Release date":                              "Data di uscita",
	"Description":                               "Descrizione",
	"Genres":                                    "Generi",
	"Gallery":                                   "Galleria",
	"Cover image":                               "Copertina",
	"Title":                                     "Titolo",
	"Admin Access":                              "Accesso Admin",
	"Enter credentials to manage content":       "Inserisci le credenziali per gestire i contenuti",
	"Username":                                  "Utente",
	"Invalid credentials":                       "Credenziali non valide",
	"Welcome back, Admin":                       "Bentornato, Admin",
	"Logged out":                                "Disconnesso",
	"Manage Content":                            "Gestione Contenuti",
	"Add New Anime":                             "Aggiungi Anime",
	"Edit Anime":                                "Modifica Anime",
	"Genres (comma separated)":                  "Generi (separati da virgola)",
	"Gallery (separated by |)":                  "Galleria (separata da |)",
	"Title is required":                         "Il titolo è obbligatorio",
	"Studio is required":                        "Lo studio è obbligatorio",
	"Date is required":                          "La data è obbligatoria",
	"Add at least one genre separated by comma": "Aggiungi almeno un genere separato da virgola",
	"Cover image is required":                   "La copertina è obbligatoria",
	"Theme: %s":                                 "Tema: %s",
	"Nothing to show yet":                       "Ancora nessun anime",
	"Anime added successfully":                  "Anime aggiunto",
	"Anime updated successfully":                "Anime aggiornato",
	"Anime deleted":                             "Anime eliminato",
	"Anime no longer exists":                    "L'anime non esiste più",
	"Delete %s? (y/n)":                          "Eliminare %s? (y/n)",
	"%d releases":                               "%d uscite",
	"Quick jump":                                "Salto rapido",
	"Language: %s":                              "Lingua: %s",
	"Fix the highlighted fields":                "Correggi i campi evidenziati",
	"Could not save: %v":                        "Impossibile salvare: %v",
	"Could not read image: %v":                  "Impossibile leggere l'immagine: %v",
	"Choose":                                    "Scegli",
	"Date must be YYYY-MM-DD, got %q":           "La data deve essere AAAA-MM-GG, ricevuto %q",
	"done":                                      "fatto",
	"close":                                     "chiudi",
	"new":                                       "nuovo",
	"edit":                                      "modifica",
	"delete":                                    "elimina",
	"logout":                                    "esci",
	"browse":                                    "sfoglia",
	"search":                                    "cerca",
	"filters":                                   "filtri",
	"reset":                                     "azzera",
	"jump":                                      "salta",
	"help":                                      "aiuto",
	"BROWSE":                                    "SFOGLIA",
	"OTHER":                                     "ALTRO",
	"Up/down":                                   "Su/giù",
	"First/last":                                "Primo/ultimo",
	"Scroll page":                               "Scorri pagina",
	"Details":                                   "Dettagli",
	"Search title":                              "Cerca titolo",
	"Month/year/studio/genre":                   "Mese/anno/studio/genere",
	"Reset filters":                             "Azzera filtri",
	"Open admin / login":                        "Apri admin / accesso",
	"New release":                               "Nuova uscita",
	"Edit release":                              "Modifica uscita",
	"Delete release":                            "Elimina uscita",
	"Logout":                                    "Esci",
	"Switch language":                           "Cambia lingua",
	"Switch theme":                              "Cambia tema",
	"Quit":                                      "Esci dal programma",
	"Close / Cancel":                            "Chiudi / Annulla",
	"Press any key to return...":                "Premi un tasto per tornare...",
}

var italianMonths = [...]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range italian {
		if err := b.SetString(language.Italian, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: bad catalog entry %q: %v", key, err))
		}
	}
	return b
}

// Translator renders UI text for one language.
type Translator struct {
	lang    domain.Language
	printer *message.Printer
}

// New returns a translator for lang.
func New(lang domain.Language) *Translator {
	return &Translator{
		lang:    lang,
		printer: message.NewPrinter(lang.Tag(), message.Catalog(messages)),
	}
}

// Language returns the translator's language.
func (t *Translator) Language() domain.Language {
	return t.lang
}

// T translates key and formats it with args.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// MonthName returns the localized full month name.
func (t *Translator) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	if t.lang == domain.LanguageItalian {
		return italianMonths[m-1]
	}
	return m.String()
}

// MonthYear formats a bucket heading such as "Marzo 2026".
func (t *Translator) MonthYear(d time.Time) string {
	return fmt.Sprintf("%s %d", t.MonthName(d.Month()), d.Year())
}

// Date formats a release date as "15 Mar 2026". Unparseable dates are
// returned unchanged.
func (t *Translator) Date(raw string) string {
	d, err := domain.ParseReleaseDate(raw)
	if err != nil {
		return raw
	}
	name := []rune(t.MonthName(d.Month()))
	if len(name) > 3 {
		name = name[:3]
	}
	return fmt.Sprintf("%02d %s %d", d.Day(), string(name), d.Year())
}
