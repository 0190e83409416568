package forms

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/gameforge/internal/platform/id"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/platform/pagerender"
	"github.com/louisbranch/gameforge/internal/services/site/platform/weberror"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	"github.com/louisbranch/gameforge/internal/services/site/storage"
	"github.com/louisbranch/gameforge/internal/services/site/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) contact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.renderContact(w, r, ContactInput{}, nil, r.URL.Query().Get("sent") == "1")
	case http.MethodPost:
		h.submitContact(w, r)
	default:
		httpx.MethodNotAllowed("GET, HEAD, POST")(w, r)
	}
}

func (h handlers) donate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.renderDonate(w, r, DonationInput{}, nil, r.URL.Query().Get("sent") == "1")
	case http.MethodPost:
		h.submitDonate(w, r)
	default:
		httpx.MethodNotAllowed("GET, HEAD, POST")(w, r)
	}
}

func (h handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindInvalidInput, "errors.bad_request", err))
		return
	}
	input := ContactInput{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Subject: strings.TrimSpace(r.PostForm.Get("subject")),
		Message: strings.TrimSpace(r.PostForm.Get("message")),
	}
	if errs := ValidateContact(input); len(errs) > 0 {
		h.renderContact(w, r, input, errs, false)
		return
	}

	view := pagerender.ResolveView(w, r, h.deps)
	messageID, err := id.NewID()
	if err != nil {
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindUnknown, "", err))
		return
	}
	h.deps.Log().Printf("contact submitted id=%s email=%s subject=%q locale=%s", messageID, input.Email, input.Subject, view.Lang)
	if err := h.saveContact(r.Context(), storage.ContactMessage{
		ID:        messageID,
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Locale:    view.Lang,
		CreatedAt: h.deps.Clock(),
	}); err != nil {
		h.deps.Log().Printf("contact persist failed id=%s err=%v", messageID, err)
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindUnavailable, "errors.server.body", err))
		return
	}
	httpx.WriteSeeOther(w, r, routepath.Sent(r.URL.Path))
}

func (h handlers) saveContact(ctx context.Context, message storage.ContactMessage) error {
	if h.deps.Inbox == nil {
		return nil
	}
	return h.deps.Inbox.SaveContactMessage(ctx, message)
}

func (h handlers) submitDonate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindInvalidInput, "errors.bad_request", err))
		return
	}
	input := DonationInput{
		Name:          strings.TrimSpace(r.PostForm.Get("name")),
		Email:         strings.TrimSpace(r.PostForm.Get("email")),
		Amount:        strings.TrimSpace(r.PostForm.Get("amount")),
		PaymentMethod: strings.TrimSpace(r.PostForm.Get("paymentMethod")),
	}
	if errs := ValidateDonation(input); len(errs) > 0 {
		h.renderDonate(w, r, input, errs, false)
		return
	}
	cents, err := ParseAmountCents(input.Amount)
	if err != nil {
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindInvalidInput, "forms.error.amount", err))
		return
	}

	view := pagerender.ResolveView(w, r, h.deps)
	pledgeID, err := id.NewID()
	if err != nil {
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindUnknown, "", err))
		return
	}
	h.deps.Log().Printf("donation submitted id=%s email=%s amount_cents=%d payment_method=%s locale=%s", pledgeID, input.Email, cents, input.PaymentMethod, view.Lang)
	if err := h.saveDonation(r.Context(), storage.DonationPledge{
		ID:            pledgeID,
		Name:          input.Name,
		Email:         input.Email,
		AmountCents:   cents,
		PaymentMethod: input.PaymentMethod,
		Locale:        view.Lang,
		CreatedAt:     h.deps.Clock(),
	}); err != nil {
		h.deps.Log().Printf("donation persist failed id=%s err=%v", pledgeID, err)
		weberror.WriteModuleError(w, r, h.deps, apperrors.Wrap(apperrors.KindUnavailable, "errors.server.body", err))
		return
	}
	httpx.WriteSeeOther(w, r, routepath.Sent(r.URL.Path))
}

func (h handlers) saveDonation(ctx context.Context, pledge storage.DonationPledge) error {
	if h.deps.Inbox == nil {
		return nil
	}
	return h.deps.Inbox.SaveDonationPledge(ctx, pledge)
}

func (h handlers) renderContact(w http.ResponseWriter, r *http.Request, input ContactInput, errs map[string]string, sent bool) {
	view := pagerender.ResolveView(w, r, h.deps)
	page, _, err := content.Decode[content.Contact](h.deps.Content, view.Lang, content.PageContact)
	if err != nil {
		h.deps.Log().Printf("decode page=contact lang=%s err=%v", view.Lang, err)
		weberror.WriteAppError(w, r, h.deps, http.StatusInternalServerError)
		return
	}
	data := templates.FormData[content.Contact]{
		View:   view,
		Page:   page,
		Action: r.URL.Path,
		Values: input.Values(),
		Errors: localize(view, errs),
		Sent:   sent,
	}
	h.write(w, r, view, page.Hero.Title, "contact", data, len(errs) > 0)
}

func (h handlers) renderDonate(w http.ResponseWriter, r *http.Request, input DonationInput, errs map[string]string, sent bool) {
	view := pagerender.ResolveView(w, r, h.deps)
	page, _, err := content.Decode[content.Donate](h.deps.Content, view.Lang, content.PageDonate)
	if err != nil {
		h.deps.Log().Printf("decode page=donate lang=%s err=%v", view.Lang, err)
		weberror.WriteAppError(w, r, h.deps, http.StatusInternalServerError)
		return
	}
	data := templates.FormData[content.Donate]{
		View:   view,
		Page:   page,
		Action: r.URL.Path,
		Values: input.Values(),
		Errors: localize(view, errs),
		Sent:   sent,
	}
	h.write(w, r, view, page.Hero.Title, "donate", data, len(errs) > 0)
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, view templates.View, title string, tmpl string, data any, invalid bool) {
	status := http.StatusOK
	if invalid {
		status = http.StatusBadRequest
	}
	err := pagerender.WritePage(w, r, h.deps, view, pagerender.Page{
		Title:      title,
		StatusCode: status,
		Body:       templates.Page(tmpl, data),
	})
	if err != nil {
		h.deps.Log().Printf("render page=%s lang=%s err=%v", tmpl, view.Lang, err)
		weberror.WriteAppError(w, r, h.deps, http.StatusInternalServerError)
	}
}

func localize(view templates.View, errs map[string]string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field, key := range errs {
		out[field] = view.T(key)
	}
	return out
}
