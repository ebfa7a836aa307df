package textutil

import (
	"testing"

	"yatta-helin-be/pkg/store"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Merhaba", "merhaba"},
		{"  ÖDEME koşulları  ", "odeme kosullari"},
		{"Doğum Günü", "dogum gunu"},
		{"İPTAL", "iptal"},
		{"çığ üşş", "cig uss"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractUserName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"ismim pattern", "ismim deniz", "Deniz"},
		{"ben pattern", "Ben Ayşe", "Ayşe"},
		{"adım pattern", "adım Mehmet, yat turu fiyatı nedir", "Mehmet"},
		{"adim without diacritic", "adim kerem", "Kerem"},
		{"no name", "yat turu ne kadar", ""},
		{"ben followed by intent word", "ben rezervasyon yaptırmak istiyorum", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractUserName(tt.message); got != tt.want {
				t.Errorf("ExtractUserName(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestIsOnlyNameMessage(t *testing.T) {
	if !IsOnlyNameMessage("ismim Deniz", "Deniz") {
		t.Error("bare introduction not recognized")
	}
	if IsOnlyNameMessage("ismim Deniz, fiyat alabilir miyim", "Deniz") {
		t.Error("introduction with a question treated as bare name")
	}
	if IsOnlyNameMessage("merhaba", "") {
		t.Error("empty detected name must never be only-name")
	}
}

func TestExtractService(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"evlilik teklifi yapmak istiyorum", store.ServiceProposal},
		{"doğum günü organizasyonu", store.ServiceBirthday},
		{"tekne kiralamak istiyoruz", store.ServiceYachtTour},
		{"yat turu fiyatları", store.ServiceYachtTour},
		{"ödeme nasıl yapılıyor", ""},
	}

	for _, tt := range tests {
		if got := ExtractService(tt.message); got != tt.want {
			t.Errorf("ExtractService(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestExtractSlots(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    store.ReservationDraft
	}{
		{
			name:    "numeric date with clock time",
			message: "15.08.2026 saat 14:00 olur mu",
			want:    store.ReservationDraft{Date: "15.08.2026", Time: "14:00"},
		},
		{
			name:    "month name date",
			message: "20 ağustos iyi olur",
			want:    store.ReservationDraft{Date: "20 agustos"},
		},
		{
			name:    "spoken time",
			message: "saat 15 gibi gelelim",
			want:    store.ReservationDraft{Time: "15:00"},
		},
		{
			name:    "people count",
			message: "6 kişi katılacağız",
			want:    store.ReservationDraft{People: 6},
		},
		{
			name:    "phone with spaces",
			message: "numaram 0532 123 45 67",
			want:    store.ReservationDraft{Phone: "05321234567"},
		},
		{
			name:    "relative date",
			message: "yarın müsait miyiz",
			want:    store.ReservationDraft{Date: "yarin"},
		},
		{
			name:    "everything at once",
			message: "yarın saat 14:00, 4 kişi, 0532 123 45 67",
			want:    store.ReservationDraft{Date: "yarin", Time: "14:00", People: 4, Phone: "05321234567"},
		},
		{
			name:    "phone digits not reread as people",
			message: "05321234567",
			want:    store.ReservationDraft{Phone: "05321234567"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSlots(tt.message)
			if got != tt.want {
				t.Errorf("ExtractSlots(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}
