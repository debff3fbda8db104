package transfer

type LinkedinPostRequest struct {
	Text       string `json:"text" validate:"required"`
	Visibility string `json:"visibility"`
}

type LinkedinProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"localizedFirstName"`
	LastName  string `json:"localizedLastName"`
}

// UGC share payload, built per the LinkedIn ugcPosts contract.

type ShareCommentary struct {
	Text string `json:"text"`
}

type ShareContent struct {
	ShareCommentary    ShareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type UGCSpecificContent struct {
	ShareContent ShareContent `json:"com.linkedin.ugc.ShareContent"`
}

type UGCVisibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

type UGCPostRequest struct {
	Author          string             `json:"author"`
	LifecycleState  string             `json:"lifecycleState"`
	SpecificContent UGCSpecificContent `json:"specificContent"`
	Visibility      UGCVisibility      `json:"visibility"`
}

// LinkedinAuthResult is returned to the caller after a completed OAuth exchange.
type LinkedinAuthResult struct {
	AccessToken string           `json:"access_token"`
	ExpiresIn   int64            `json:"expires_in"`
	Profile     *LinkedinProfile `json:"profile"`
}
