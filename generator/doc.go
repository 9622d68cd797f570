// Package generator is the incremental generation driver at the heart of razorgen.
//
// # Overview
//
// A batch run takes an ordered list of template inputs and, for each one:
//
//  1. Maps the absolute input path to a project-relative path and an output
//     path under the generation cache directory
//  2. Skips the file when its previously generated output is still fresh
//  3. Derives a dotted namespace from the file's folder location
//  4. Asks the backend to generate output text
//  5. Writes the result as BOM-prefixed UTF-8
//
// # Usage
//
//	session := generator.NewSession(backend, generator.ProjectContext{
//		ProjectRoot:    "/path/to/project",
//		CacheDirectory: "/path/to/project/obj/gen",
//		RootNamespace:  "MyApp",
//	}, nil)
//	result := session.Run(ctx, inputs)
//	if !result.Succeeded {
//		// inspect logs; result.Outputs still lists files written before the failure
//	}
//
// # Staleness
//
// Regeneration decisions are purely timestamp-based: an input is stale when
// its output is missing or older than the input. Clock skew or
// timestamp-preserving copies can cause false negatives; this is a documented
// limitation, not a bug.
package generator
