package schema

// OutputMode controls how the scan report is rendered.
type OutputMode string

// Supported output modes.
const (
	TextOut OutputMode = "text"
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// ValidOutputModes is the set of accepted output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// VCSBackend selects which version-control client the extractor talks to.
type VCSBackend string

// Supported VCS backends. JJBackend shells out to the jj binary; GitBackend
// reads plain Git repositories in-process.
const (
	JJBackend  VCSBackend = "jj"
	GitBackend VCSBackend = "git"
)

// ValidVCSBackends is the set of accepted VCS backends.
var ValidVCSBackends = map[VCSBackend]struct{}{
	JJBackend:  {},
	GitBackend: {},
}
