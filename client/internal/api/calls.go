// Package api maps each backend operation to its method, path and wire body.
// It performs no I/O; the client package dispatches the calls.
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
)

// Call is a fully described backend operation.
type Call struct {
	Method string
	Path   string
	Body   any // nil for no body
}

// pageQuery renders page/limit plus one optional filter in the order the
// backend documents them.
func pageQuery(page, limit int, key, value string) string {
	q := "page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if value != "" {
		q += "&" + key + "=" + url.QueryEscape(value)
	}
	return q
}

func seg(s string) string { return url.PathEscape(s) }

// ------------------------------
// Auth
// ------------------------------

func Register(req types.RegisterRequest) Call {
	return Call{Method: http.MethodPost, Path: "/auth/register", Body: req.Body()}
}

func Login(req types.LoginRequest) Call {
	return Call{Method: http.MethodPost, Path: "/auth/login", Body: req.Body()}
}

func CurrentUser() Call {
	return Call{Method: http.MethodGet, Path: "/auth/me"}
}

func UpdateProfile(req types.ProfileUpdate) Call {
	return Call{Method: http.MethodPut, Path: "/auth/profile", Body: req.Body()}
}

// ------------------------------
// Blogs
// ------------------------------

func ListBlogs(page, limit int, search string) Call {
	return Call{Method: http.MethodGet, Path: "/blogs?" + pageQuery(page, limit, "search", search)}
}

func GetBlog(slugOrID string) Call {
	return Call{Method: http.MethodGet, Path: "/blogs/" + seg(slugOrID)}
}

func CreateBlog(req types.CreateBlogRequest) Call {
	return Call{Method: http.MethodPost, Path: "/blogs", Body: req.Body()}
}

func UpdateBlog(id int64, req types.UpdateBlogRequest) Call {
	return Call{Method: http.MethodPut, Path: fmt.Sprintf("/blogs/%d", id), Body: req.Body()}
}

func DeleteBlog(id int64) Call {
	return Call{Method: http.MethodDelete, Path: fmt.Sprintf("/blogs/%d", id)}
}

// ------------------------------
// Admin
// ------------------------------

func DashboardStats() Call {
	return Call{Method: http.MethodGet, Path: "/admin/dashboard"}
}

func ListUsers(page, limit int, search string) Call {
	return Call{Method: http.MethodGet, Path: "/admin/users?" + pageQuery(page, limit, "search", search)}
}

func ListAllDonations(page, limit int, status string) Call {
	return Call{Method: http.MethodGet, Path: "/admin/donations?" + pageQuery(page, limit, "status", status)}
}

func UpdateUserStatus(id int64, active bool) Call {
	return Call{Method: http.MethodPut, Path: fmt.Sprintf("/admin/users/%d/status", id), Body: types.StatusBody(active)}
}

func UpdateUserRole(id int64, role string) Call {
	return Call{Method: http.MethodPut, Path: fmt.Sprintf("/admin/users/%d/role", id), Body: types.RoleBody(role)}
}

func DeleteUser(id int64) Call {
	return Call{Method: http.MethodDelete, Path: fmt.Sprintf("/admin/users/%d", id)}
}

// ------------------------------
// Donations and payments
// ------------------------------

func CreateDonation(req types.CreateDonationRequest) Call {
	return Call{Method: http.MethodPost, Path: "/donations", Body: req.Body()}
}

func MyDonations(page, limit int) Call {
	return Call{Method: http.MethodGet, Path: "/donations/my-donations?" + pageQuery(page, limit, "", "")}
}

func DonationStats() Call {
	return Call{Method: http.MethodGet, Path: "/donations/stats"}
}

func CreateStripeIntent(req types.StripeIntentRequest) Call {
	return Call{Method: http.MethodPost, Path: "/payments/stripe/create-intent", Body: req.Body()}
}

func PaymentMethods(country string) Call {
	return Call{Method: http.MethodGet, Path: "/payments/methods/" + seg(country)}
}

// ------------------------------
// Content, testimonials, events
// ------------------------------

func GetContent(key string) Call {
	return Call{Method: http.MethodGet, Path: "/content/" + seg(key)}
}

func ListContent() Call {
	return Call{Method: http.MethodGet, Path: "/content"}
}

func SaveContent(req types.SaveContentRequest) Call {
	return Call{Method: http.MethodPost, Path: "/content", Body: req.Body()}
}

func UpdateContentStatus(key string, active bool) Call {
	return Call{Method: http.MethodPut, Path: "/content/" + seg(key) + "/status", Body: types.StatusBody(active)}
}

func DeleteContent(key string) Call {
	return Call{Method: http.MethodDelete, Path: "/content/" + seg(key)}
}

func BulkUpdateContent(updates []types.SaveContentRequest) Call {
	return Call{Method: http.MethodPost, Path: "/content/bulk-update", Body: types.BulkContentBody(updates)}
}

func Testimonials() Call {
	return Call{Method: http.MethodGet, Path: "/testimonials"}
}

func Events() Call {
	return Call{Method: http.MethodGet, Path: "/events"}
}
