// SPDX-License-Identifier: MIT

// Package report persists analysis output.
//
// Three artifacts are produced:
//
//   - structured results, JSON or YAML, one file per analysis;
//   - interactive network pages (vis-network) built from a Network model
//     that analyses decorate before writing;
//   - an HTML summary rendered from Markdown with goldmark.
//
// A Writer stamps every artifact of one run with the same run ID.
package report
