// Package pools recycles the index buffers that traversal workers fill
// while expanding a frontier, so a level-synchronous BFS over millions of
// nodes does not allocate a fresh slice per chunk per level.
//
//   - IntPool: size-class pooling for []int node-index buffers
package pools
