package feed

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/tuiter-app/tuiter/app"
	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/common"
)

const (
	// PageSize is the number of posts the API returns for a full feed page.
	PageSize         = 10
	prefetchTrigger  = 3
	maxInlineReplies = 2

	noPostsNotice = "No tuits yet. Press P to write the first one."
	endOfFeed     = "You reached the end of your feed."
)

// LoadKind distinguishes the three feed fetch operations.
type LoadKind int

const (
	LoadInitial LoadKind = iota
	LoadRefresh
	LoadMore
)

func (k LoadKind) String() string {
	switch k {
	case LoadRefresh:
		return "refresh"
	case LoadMore:
		return "more"
	}
	return "initial"
}

// PageLoadedMsg is sent when a feed page request succeeds.
type PageLoadedMsg struct {
	Kind   LoadKind
	Page   int
	Posts  []domain.Post
	ReqSeq int
}

// PageErrorMsg is sent when a feed page request fails.
type PageErrorMsg struct {
	Kind   LoadKind
	Page   int
	Err    error
	ReqSeq int
}

// LikeResultMsg is sent after a like or unlike request resolves.
// Liked is the state that was requested.
type LikeResultMsg struct {
	ID    int64
	Liked bool
	Err   error
}

// ThreadLoadedMsg is sent when a post and its replies are fetched.
type ThreadLoadedMsg struct {
	ID      int64
	Post    domain.Post
	Replies []domain.Post
}

// ThreadErrorMsg is sent when a thread fetch fails.
type ThreadErrorMsg struct {
	ID  int64
	Err error
}

// ComposeMsg asks the root model to open the composer.
// Parent is nil for a new top-level tuit.
type ComposeMsg struct {
	Parent    *domain.Post
	UseInline bool
}

// PostCreatedMsg tells the feed a new top-level tuit was published.
type PostCreatedMsg struct {
	Post domain.Post
}

// ReplyCreatedMsg tells the feed a reply was published.
type ReplyCreatedMsg struct {
	Reply domain.Post
}

// OpenProfileMsg asks the root model to open the profile view.
type OpenProfileMsg struct{}

// --- Model state ---

type modelServices struct {
	feed      app.FeedService
	posts     app.PostService
	favorites app.FavoriteStore
	userEmail string
}

type feedState struct {
	groups       []domain.PostGroup
	page         int
	hasMore      bool
	loading      bool // initial load
	refreshing   bool
	loadingMore  bool
	err          string // inline error for a failed initial load
	notice       string // empty-feed notice
	pagingNotice string
	feedReqSeq   int
	cursor       int
	likePending  map[int64]bool
}

type uiState struct {
	keys         common.KeyMap
	spinner      spinner.Model
	width        int
	height       int
	startIndex   int
	showAllHints bool
}

type detailState struct {
	showDetail    bool
	detailID      int64
	detailPost    domain.Post
	detailReplies []domain.Post
	detailLoading bool
	detailErr     string
	detailCursor  int // 0 for the main post, 1...n for replies
	detailStart   int
}

type favoritesState struct {
	showFavorites bool
	favoriteList  []domain.Favorite
	favoriteSet   map[string]bool
	favCursor     int
}
