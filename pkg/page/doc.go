// Package page binds the client-side form behaviours of the club pages to a
// document once, when the host starts.
//
// The host (a browser bridge, a server-side renderer or a test) exposes its
// document through the Root, Form and Element interfaces and forwards every
// edit event to Page.Input. Attach walks the document a single time and
// records which elements get which behaviour:
//
//   - phone inputs (type="tel") and inputs with a data-mask attribute are
//     masked on every edit;
//   - inputs with data-search run the search handler, debounced by
//     Config.SearchDelay when rate limiters are enabled;
//   - forms with data-autosave=<id> have their draft restored on attach,
//     saved on every edit and discarded by Page.Submit;
//   - textareas with data-maxlength get a remaining-characters counter;
//   - elements with data-confirm get a confirmation prompt text.
//
// Texts shown to members come from an embedded YAML catalog in Brazilian
// Portuguese and English.
//
//	p, err := page.Attach(ctx, doc, page.DefaultConfig(),
//	    page.WithStore(store),
//	    page.WithSearchHandler(search),
//	    page.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	// on every input event
//	_ = p.Input(ctx, el)
package page
