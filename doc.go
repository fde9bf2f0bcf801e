/*
Package dhash computes perceptual difference hashes of images and measures
the similarity between them.

A difference hash compares the brightness gradient between adjacent pixels
of a heavily downscaled version of an image and packs the comparison results
into a 64-bit signature. Because only the sign of each pixel-to-pixel
difference is retained, the signature is resilient to differences in aspect
ratio, image size, and brightness or contrast.

The technique is based on the "Kind of Like That" article found at
http://www.hackerfactor.com/blog/?/archives/529-Kind-of-Like-That.html.
*/
package dhash
