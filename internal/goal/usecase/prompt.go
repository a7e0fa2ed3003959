package usecase

import (
	"fmt"
	"strings"
	"time"

	"goal-planner/internal/goal"
	"goal-planner/internal/schedule"
)

const extractionSystemPrompt = `Kamu adalah asisten perencana target harian.
Tugasmu HANYA mengekstrak data target dari pesan pengguna. Jangan menyapa dan jangan menjelaskan.

Hari ini: %s (%s).

Balas dengan SATU objek JSON tanpa teks lain:
{"title": "...", "description": "...", "startDate": "YYYY-MM-DD" | null, "endDate": "YYYY-MM-DD" | null, "emoji": "..."}

ATURAN:
1. title: ringkas, maksimal 8 kata, boleh memuat durasi seperti "selama 2 bulan".
2. description: satu atau dua kalimat tentang apa yang ingin dicapai.
3. startDate dan endDate HANYA diisi jika pengguna menyebut tanggal atau frasa waktu yang jelas
   ("besok", "minggu depan", "1 September"). Jika tidak disebut, isi null. JANGAN menebak dan JANGAN memakai hari ini sebagai default.
4. Jika pengguna hanya menyebut durasi ("selama 3 bulan") tanpa waktu mulai, startDate dan endDate tetap null.
5. emoji: satu emoji yang cocok dengan target.`

const contentSystemPrompt = `Kamu menyusun rencana kegiatan harian untuk sebuah target.
Balas HANYA dengan array JSON, satu elemen per hari, tanpa teks lain:
[{"day": 1, "title": "...", "description": "..."}]

ATURAN:
1. Jumlah elemen harus sama dengan jumlah hari yang diminta, urut sesuai nomor hari.
2. title maksimal 8 kata, description satu sampai dua kalimat yang bisa langsung dikerjakan.
3. Variasikan kegiatan sesuai hari dalam minggu; akhir pekan boleh lebih panjang.
4. Tingkatkan kesulitan secara bertahap dari hari pertama sampai hari terakhir.
5. Jika tidak bisa membuat JSON, boleh memakai CSV dengan kolom day,title,description.`

func buildExtractionSystemPrompt(today time.Time) string {
	return fmt.Sprintf(extractionSystemPrompt, today.Format(time.DateOnly), today.Weekday())
}

// buildExtractionPrompt lists what the user wrote and what is already known.
func buildExtractionPrompt(draft goal.Draft, recent []goal.Goal) string {
	var sb strings.Builder
	sb.WriteString("Pesan pengguna:\n")
	sb.WriteString(strings.TrimSpace(draft.InitialValue))
	sb.WriteString("\n\nData yang sudah diketahui (jangan diubah):\n")
	writeField(&sb, "title", draft.Title)
	writeField(&sb, "description", draft.Description)
	writeField(&sb, "startDate", formatDatePtr(draft.StartDate))
	writeField(&sb, "endDate", formatDatePtr(draft.EndDate))
	writeField(&sb, "emoji", draft.Emoji)

	if len(recent) > 0 {
		sb.WriteString("\nTarget pengguna yang sedang berjalan:\n")
		for _, g := range recent {
			fmt.Fprintf(&sb, "- %s (%s s/d %s)\n", g.Title, g.StartDate.Format(time.DateOnly), g.EndDate.Format(time.DateOnly))
		}
	}
	return sb.String()
}

func buildContentPrompt(req schedule.ContentRequest, days []schedule.Day, total int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Target: %s %s\n", req.Emoji, req.Title)
	fmt.Fprintf(&sb, "Deskripsi: %s\n", req.Description)
	fmt.Fprintf(&sb, "Periode: %s s/d %s (%d hari)\n\n", req.StartDate.Format(time.DateOnly), req.EndDate.Format(time.DateOnly), total)
	sb.WriteString("Buat kegiatan untuk hari berikut:\n")
	for _, d := range days {
		fmt.Fprintf(&sb, "- day %d: %s (%s)\n", d.Number, d.Date.Format(time.DateOnly), d.Date.Weekday())
	}
	return sb.String()
}

func writeField(sb *strings.Builder, name, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(sb, "%s: %s\n", name, value)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
