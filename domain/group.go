package domain

// GroupPosts partitions a flat page of posts into top-level groups.
// Top-level order is preserved and replies keep their arrival order.
// Replies whose parent is not a top-level post of the same page are dropped.
func GroupPosts(posts []Post) []PostGroup {
	if len(posts) == 0 {
		return []PostGroup{}
	}

	var roots []Post
	replies := make(map[int64][]Post)
	for _, p := range posts {
		if p.IsReply() {
			replies[p.ParentID] = append(replies[p.ParentID], p)
			continue
		}
		roots = append(roots, p)
	}

	groups := make([]PostGroup, 0, len(roots))
	for _, root := range roots {
		bucket := replies[root.ID]
		out := make([]Post, len(bucket))
		copy(out, bucket)
		groups = append(groups, PostGroup{Post: root, Replies: out})
	}
	return groups
}
