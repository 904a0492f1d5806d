// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with an optional warping path.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - band around the length-normalised diagonal (Window) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - on-demand warping path (ReturnPath=true)
//   - heap or memory-mapped matrix (MemoryMode) for long series
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvalign/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.SlopePenalty = 0.5
//	opts.ReturnPath = true
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// The computation is a thin layer over package align with the
// scoring.DynamicTimeWarping strategy; see that package for the matrix and
// backtracking details.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) on the heap (FullMatrix) or on disk (MappedFile)
package dtw
