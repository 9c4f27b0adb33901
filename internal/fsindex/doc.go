// Package fsindex enumerates the files of a built static site.
//
// A single walk over the scan root produces two things:
//   - the known-path set, containing every file regardless of type, which is
//     the ground truth for "does this link target exist"
//   - the list of HTML files to check, which skips excluded subtrees such as
//     documentation generated from SDKs
//
// # Usage
//
//	idx, err := fsindex.Build(ctx, "dist", fsindex.NewExclude([]string{"docs/sdk/"}, nil))
//	for _, f := range idx.Files {
//	    // read and check f
//	}
package fsindex
