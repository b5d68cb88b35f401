// Package textfile reads and writes text files without disturbing their
// conventions.
//
// A text file has two conventions that are easy to lose when it is
// rewritten by a program: its [LineEnding] (CR, LF or CRLF) and whether it
// starts with a UTF-8 byte order mark. [Rewrite] detects both on the
// existing file and writes the new content the same way, so a CRLF file
// with a BOM stays a CRLF file with a BOM however many times it is edited.
//
//	err := textfile.Rewrite(ctx, fsys, "notes.txt", slices.Values(lines))
//
// Files that do not exist yet are written with the defaults stored in the
// [context.Context], which are native line endings without a BOM.
// Set them using [WithDefaults].
//
//	ctx = textfile.WithDefaults(ctx, textfile.Convention{
//	    LineEnding: textfile.CRLF,
//	    BOM:        true,
//	})
//
// [AppendLines] reads the existing lines and rewrites the file with the new
// lines added. [Convert] rewrites a file with a chosen [Convention],
// discarding the old one.
//
// # Detection
//
// [DetectLineEnding] reports the first line ending in a stream and stops
// reading as soon as it knows. [DetectLineEndings] reads the whole stream and
// reports every style it saw. Neither seeks, so both work on pipes.
//
// [DetectBOM] reads at most three bytes and returns a [BOM], which is
// [BOMPresent], [BOMAbsent] or [BOMIndeterminate]. Indeterminate means the
// stream was empty: an empty file has no convention to keep.
// [HasBOM] collapses Indeterminate into false.
//
// The file variants, such as [DetectFileLineEnding], treat a missing file as
// an empty one.
//
// # Files
//
// Files are accessed through [lesiw.io/fs.FS], so the same calls work on the
// local disk ([lesiw.io/fs/osfs]), in memory ([lesiw.io/fs/memfs]) or on a
// remote machine.
//
// [TruncateFront] removes bytes from the start of a file.
// [TruncateFrontFile] does the same through a single open [File],
// such as an [*os.File].
//
// # Errors
//
// Arguments are checked before any file is touched. A rejected argument is
// an [*ArgError] wrapping [ErrNilArgument] or [ErrInvalidValue]; use [Invalid]
// to recognize one. Operations that need an existing file return an error
// matching [ErrNoFile]. Filesystem errors are returned as they are.
//
// # Tracing
//
// Every file this package writes is reported to [Trace], which discards its
// input by default. Set it to [StderrTrace] to print writes to standard
// error.
//
//	textfile.Trace = textfile.StderrTrace
package textfile
