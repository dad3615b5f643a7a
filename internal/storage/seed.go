package storage

import "context"

type seedBook struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
}

func seedBooks() []seedBook {
	return []seedBook{
		{ISBN: "978-0-123456-78-9", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925, Genre: "Fiction"},
		{ISBN: "978-0-987654-32-1", Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960, Genre: "Fiction"},
		{ISBN: "978-0-112233-44-5", Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopian Fiction"},
		{ISBN: "978-0-556677-88-9", Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813, Genre: "Romance"},
		{ISBN: "978-0-998877-66-5", Title: "The Catcher in the Rye", Author: "J.D. Salinger", Year: 1951, Genre: "Fiction"},
	}
}

// Seed force-writes the fixed five-book catalog into s, replacing any
// existing books document. Users and reviews are left alone.
func Seed(ctx context.Context, s Store) error {
	return s.Save(ctx, CollectionBooks, seedBooks())
}
