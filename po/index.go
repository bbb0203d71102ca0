package po

import "embed"

// FS holds the .po sources and, once go generate has run, the compiled
// <lang>/LC_MESSAGES/termini.mo catalogues. Without that step the embedded
// locale dir has no translations.
//
//go:generate sh -c "find .. -name '*.go' -o -name '*.ui' | grep -v _examples | xgettext --language=C++ --keyword=_ --keyword=L --omit-header -o termini.pot --files-from=-"
//go:generate sh -c "find . -name '*.po' -print0 | xargs -0 -I {} msgmerge --update --backup=none \"{}\" termini.pot"
//go:generate sh -c "find . -type f -name '*.po' -print0 | xargs -0 -I {} sh -c 'mkdir -p $(basename {} .po)/LC_MESSAGES && msgfmt -o $(basename {} .po)/LC_MESSAGES/termini.mo {}'"
//go:generate sh -c "find . -name \"*.po\" -exec basename {} .po \\; > LINGUAS"
//go:embed *
var FS embed.FS
