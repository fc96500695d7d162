package browser

import (
	"html/template"
	"net/http"
	"strconv"
)

// fixtureSong seeds one row of the fixture's song table.
type fixtureSong struct {
	Title       string
	Artist      string
	ReleaseDate string
	Price       string
}

func defaultSongs() []fixtureSong {
	return []fixtureSong{
		{"Clair de Lune", "Debussy", "1905-01-01", "0.99"},
		{"So What", "Miles Davis", "1959-08-17", "1.29"},
		{"Hey Jude", "The Beatles", "1968-08-26", "1.29"},
		{"Superstition", "Stevie Wonder", "1972-10-24", "1.19"},
		{"One More Time", "Daft Punk", "2000-11-13", "0.99"},
	}
}

// portalHandler renders the fixture portal. Query parameters shape the page
// for negative-path tests:
//
//	rows=N       seed N rows instead of the default 5
//	drop=NAME    omit one header element ("search-close")
//	blank=title  render the first row with an empty title value
func portalHandler() http.Handler {
	tmpl := template.Must(template.New("portal").Parse(portalTemplate))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		songs := defaultSongs()
		if raw := r.URL.Query().Get("rows"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "bad rows", http.StatusBadRequest)
				return
			}
			for len(songs) < n {
				songs = append(songs, fixtureSong{"Filler", "Nobody", "2001-01-01", "0.01"})
			}
			songs = songs[:n]
		}
		if r.URL.Query().Get("blank") == "title" && len(songs) > 0 {
			songs[0].Title = ""
		}

		data := struct {
			Songs           []fixtureSong
			DropSearchClose bool
		}{
			Songs:           songs,
			DropSearchClose: r.URL.Query().Get("drop") == "search-close",
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

const portalTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Acme Benefits Portal</title>
<style>
  body { font-family: sans-serif; margin: 0; }
  header nav ul { list-style: none; display: flex; gap: 1rem; padding: 0; }
  #mobile-menu-toggle { display: none; }
  table { border-collapse: collapse; }
  td, th { border: 1px solid #ccc; padding: 4px; }
</style>
</head>
<body>
<header id="site-header">
  <a class="skip-link" href="#main">Skip to content</a>
  <div id="top-bar">
    <a id="login-link" href="/login">Log in</a>
    <div id="profile-menu">My profile</div>
    <a id="help-link" href="/help">Help</a>
    <span id="notification-bell">3</span>
  </div>
  <img id="site-logo" src="data:image/gif;base64,R0lGODlhAQABAAAAACw=" alt="Acme">
  <span id="site-title">Acme Benefits</span>
  <button id="mobile-menu-toggle">Menu</button>
  <nav id="main-menu">
    <ul>
      <li id="menu-home">Home</li>
      <li id="menu-benefits">Benefits
        <ul id="submenu-benefits">
          <li id="submenu-benefits-medical">Medical</li>
          <li id="submenu-benefits-dental">Dental</li>
          <li id="submenu-benefits-vision">Vision</li>
          <li id="submenu-benefits-life">Life</li>
        </ul>
      </li>
      <li id="menu-dependents">Dependents</li>
      <li id="menu-claims">Claims
        <ul id="submenu-claims">
          <li id="submenu-claims-submit">Submit a claim</li>
          <li id="submenu-claims-status">Claim status</li>
          <li id="submenu-claims-history">History</li>
        </ul>
      </li>
      <li id="menu-documents">Documents</li>
      <li id="menu-support">Support
        <ul id="submenu-support">
          <li id="submenu-support-faq">FAQ</li>
          <li id="submenu-support-contact">Contact us</li>
          <li id="submenu-support-glossary">Glossary</li>
        </ul>
      </li>
    </ul>
  </nav>
  <div id="search-bar">
    <button id="search-toggle">Search</button>
    <input id="search-input" type="search" placeholder="Search benefits">
    <button id="search-submit">Go</button>
{{- if not .DropSearchClose}}
    <button id="search-close">Close</button>
{{- end}}
  </div>
  <div id="translate-bar">
    <button id="translate-toggle">Language</button>
    <button id="translate-option-en">English</button>
    <button id="translate-option-es">Espa&ntilde;ol</button>
    <button id="translate-option-fr">Fran&ccedil;ais</button>
  </div>
</header>
<main id="main">
  <h2 id="song-library-heading">Song Library</h2>
  <input id="song-filter" type="text" placeholder="Filter by title">
  <button id="song-filter-clear">Clear</button>
  <table id="song-table">
    <thead>
      <tr>
        <th id="song-header-title">Title</th>
        <th id="song-header-artist">Artist</th>
        <th id="song-header-release-date">Release Date</th>
        <th id="song-header-price">Price</th>
        <th id="song-header-actions">Actions</th>
      </tr>
    </thead>
    <tbody>
{{- range .Songs}}
      <tr>
        <td><input class="song-title" value="{{.Title}}"></td>
        <td><input class="song-artist" value="{{.Artist}}"></td>
        <td><input class="song-release-date" value="{{.ReleaseDate}}"></td>
        <td><input class="song-price" value="{{.Price}}"></td>
        <td>
          <button class="song-update">Update</button>
          <button class="song-delete">Delete</button>
        </td>
      </tr>
{{- end}}
    </tbody>
  </table>
  <fieldset id="new-song-form">
    <input id="new-song-title" placeholder="Title">
    <input id="new-song-artist" placeholder="Artist">
    <input id="new-song-release-date" placeholder="Release date">
    <input id="new-song-price" placeholder="Price">
    <button id="add-song">Add song</button>
  </fieldset>
</main>
<script>
(function () {
  document.getElementById('add-song').addEventListener('click', function () {
    var tbody = document.querySelector('#song-table tbody');
    var tr = document.createElement('tr');
    ['title', 'artist', 'release-date', 'price'].forEach(function (field) {
      var td = document.createElement('td');
      var input = document.createElement('input');
      input.className = 'song-' + field;
      input.value = document.getElementById('new-song-' + field).value;
      td.appendChild(input);
      tr.appendChild(td);
    });
    var actions = document.createElement('td');
    actions.innerHTML = '<button class="song-update">Update</button><button class="song-delete">Delete</button>';
    tr.appendChild(actions);
    tbody.appendChild(tr);
  });

  document.getElementById('song-filter').addEventListener('input', function (e) {
    var q = e.target.value.toLowerCase();
    document.querySelectorAll('#song-table tbody tr').forEach(function (tr) {
      var title = tr.querySelector('input.song-title').value.toLowerCase();
      tr.style.display = title.indexOf(q) >= 0 ? '' : 'none';
    });
  });

  document.getElementById('song-filter-clear').addEventListener('click', function () {
    var filter = document.getElementById('song-filter');
    filter.value = '';
    filter.dispatchEvent(new Event('input'));
  });

  document.querySelector('#song-table tbody').addEventListener('click', function (e) {
    if (e.target.classList.contains('song-delete')) {
      e.target.closest('tr').remove();
    }
  });
})();
</script>
</body>
</html>
`
