package validation

const (
	msgMissingStart       = "Kapan kamu ingin mulai? Tanggal mulai belum ditentukan."
	msgMissingEnd         = "Sampai kapan target ini berjalan? Tanggal selesai atau durasi belum ditentukan."
	msgMissingEndNoPhrase = "Berapa lama target ini berjalan? Sebutkan tanggal selesai atau durasinya, misalnya \"selama 2 bulan\"."
	msgMissingTitle       = "Judul target belum ada."
	msgMissingDescription = "Deskripsi target belum ada."
	msgEndBeforeStart     = "tanggal selesai lebih awal dari tanggal mulai"
	// Formatted with the cap twice.
	msgDurationExceeded = "durasi melebihi %d bulan (duration exceeds %d months)"

	defaultTitle = "Target baru"
)
